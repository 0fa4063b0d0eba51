package scene

import (
	"strings"

	"github.com/midbel/svg"
)

// Group creates a <g> element.
func Group() *Element {
	return New("g")
}

// Rect creates a <rect>.
func Rect(x, y, w, h float64) *Element {
	return New("rect").
		SetFloat("x", x).
		SetFloat("y", y).
		SetFloat("width", w).
		SetFloat("height", h)
}

// Line creates a <line> from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2 float64) *Element {
	return New("line").
		SetFloat("x1", x1).
		SetFloat("y1", y1).
		SetFloat("x2", x2).
		SetFloat("y2", y2)
}

// Circle creates a <circle>.
func Circle(cx, cy, r float64) *Element {
	return New("circle").
		SetFloat("cx", cx).
		SetFloat("cy", cy).
		SetFloat("r", r)
}

// Path creates a <path> with the given path data.
func Path(d *PathData) *Element {
	el := New("path").Set("d", d.String())
	el.path = d
	return el
}

// Text creates a <text> at (x, y).
func Text(x, y float64, s string) *Element {
	el := New("text").SetFloat("x", x).SetFloat("y", y)
	el.Text = s
	return el
}

type pathCmd struct {
	op   byte
	x, y float64
}

// PathData accumulates absolute SVG path commands.
type PathData struct {
	cmds []pathCmd
}

// MoveTo starts a new subpath.
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.cmds = append(p.cmds, pathCmd{op: 'M', x: x, y: y})
	return p
}

// LineTo draws a straight segment.
func (p *PathData) LineTo(x, y float64) *PathData {
	p.cmds = append(p.cmds, pathCmd{op: 'L', x: x, y: y})
	return p
}

// Close closes the current subpath.
func (p *PathData) Close() *PathData {
	p.cmds = append(p.cmds, pathCmd{op: 'Z'})
	return p
}

// Empty reports whether no command was recorded.
func (p *PathData) Empty() bool {
	return len(p.cmds) == 0
}

// String returns the compact path data, e.g. "M0,-5L5,0Z".
func (p *PathData) String() string {
	var b strings.Builder
	for _, c := range p.cmds {
		b.WriteByte(c.op)
		if c.op == 'Z' {
			continue
		}
		b.WriteString(Num(c.x))
		b.WriteByte(',')
		b.WriteString(Num(c.y))
	}
	return b.String()
}

// apply replays the commands onto a library path.
func (p *PathData) apply(path *svg.Path) {
	for _, c := range p.cmds {
		switch c.op {
		case 'M':
			path.AbsMoveTo(svg.NewPos(c.x, c.y))
		case 'L':
			path.AbsLineTo(svg.NewPos(c.x, c.y))
		case 'Z':
			path.ClosePath()
		}
	}
}
