// Package scene is a small retained SVG element tree.
//
// Charts build their drawing into a Surface, which can be cleared and
// redrawn and inspected in tests. Serialisation goes through the
// github.com/midbel/svg node types.
package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the SVG tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string

	path *PathData
}

// New creates an element with the given tag.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// Set assigns an attribute, replacing an existing one of the same name.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetFloat assigns a numeric attribute using the shortest decimal form.
func (e *Element) SetFloat(name string, v float64) *Element {
	return e.Set(name, Num(v))
}

// Get returns an attribute value and whether it was set.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// GetFloat parses a numeric attribute. Missing or invalid values are 0.
func (e *Element) GetFloat(name string) float64 {
	v, ok := e.Get(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// AddClass appends a class name.
func (e *Element) AddClass(name string) *Element {
	if cur, ok := e.Get("class"); ok && cur != "" {
		if e.HasClass(name) {
			return e
		}
		return e.Set("class", cur+" "+name)
	}
	return e.Set("class", name)
}

// HasClass reports whether the element carries the class name.
func (e *Element) HasClass(name string) bool {
	cur, _ := e.Get("class")
	for _, c := range strings.Fields(cur) {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds child as the last child and returns it.
func (e *Element) Append(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Clear removes all children.
func (e *Element) Clear() {
	e.Children = nil
}

// Walk visits e and its descendants depth first. Returning false from fn
// skips the children of that element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Find returns all descendants (including e) that carry the class.
func (e *Element) Find(class string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.HasClass(class) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Translate sets a translate transform.
func (e *Element) Translate(x, y float64) *Element {
	return e.Set("transform", fmt.Sprintf("translate(%s,%s)", Num(x), Num(y)))
}

// Style appends a CSS declaration to the style attribute.
func (e *Element) Style(prop, value string) *Element {
	decl := prop + ":" + value
	if cur, ok := e.Get("style"); ok && cur != "" {
		return e.Set("style", cur+";"+decl)
	}
	return e.Set("style", decl)
}

// Num formats a coordinate with at most three decimals and no trailing zeros.
func Num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
