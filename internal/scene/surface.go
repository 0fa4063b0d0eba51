package scene

import (
	"io"
)

// SVGNamespace is the namespace written on the root element.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Surface is a fixed-size drawing area backed by a root <svg> element.
type Surface struct {
	root *Element
}

// NewSurface creates an empty surface of the given pixel size.
func NewSurface(width, height float64) *Surface {
	s := &Surface{root: New("svg")}
	s.root.Set("xmlns", SVGNamespace)
	s.Resize(width, height)
	return s
}

// Resize sets the surface dimensions and view box.
func (s *Surface) Resize(width, height float64) {
	s.root.SetFloat("width", width)
	s.root.SetFloat("height", height)
	s.root.Set("viewBox", "0 0 "+Num(width)+" "+Num(height))
}

// Size returns the surface dimensions.
func (s *Surface) Size() (float64, float64) {
	return s.root.GetFloat("width"), s.root.GetFloat("height")
}

// Root returns the <svg> element.
func (s *Surface) Root() *Element {
	return s.root
}

// Clear removes every drawn element, leaving the surface attributes intact.
func (s *Surface) Clear() {
	s.root.Clear()
	for i := 0; i < len(s.root.Attrs); i++ {
		if s.root.Attrs[i].Name == "style" {
			s.root.Attrs = append(s.root.Attrs[:i], s.root.Attrs[i+1:]...)
			i--
		}
	}
}

// Append adds a top-level element.
func (s *Surface) Append(el *Element) *Element {
	return s.root.Append(el)
}

// Find returns every element carrying the class.
func (s *Surface) Find(class string) []*Element {
	return s.root.Find(class)
}

// Count returns the number of elements carrying the class.
func (s *Surface) Count(class string) int {
	return len(s.Find(class))
}

// Len returns the total number of elements below the root.
func (s *Surface) Len() int {
	n := -1
	s.root.Walk(func(*Element) bool {
		n++
		return true
	})
	return n
}

// Render writes the surface as a standalone SVG document.
func (s *Surface) Render(w io.Writer) error {
	return render(w, s.root.node(rootInherited(), false))
}

// RenderInline writes the <svg> element without the XML declaration,
// suitable for embedding in HTML.
func (s *Surface) RenderInline(w io.Writer) error {
	return s.root.Render(w)
}
