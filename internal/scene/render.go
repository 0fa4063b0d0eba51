package scene

import (
	"bufio"
	"encoding/xml"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/midbel/svg"
)

// defaultFontSize applies to text with no font-size of its own or from an
// enclosing group.
const defaultFontSize = 16

// zeroAdjust is written by svg.Text for every font. A zero adjustment
// scales the glyphs to nothing in browsers that honour it.
const zeroAdjust = `font-size-adjust="0"`

// inherited holds the presentation properties a <g> passes down. svg.Group
// only writes fill, stroke and transform, so font and dash settings are
// applied on the descendants instead.
type inherited struct {
	fontSize      float64
	fontFamily    []string
	anchor        string
	dash          []int
	strokeOpacity float64
}

func rootInherited() inherited {
	return inherited{fontSize: defaultFontSize}
}

// Render writes the element and its subtree as SVG markup.
func (e *Element) Render(w io.Writer) error {
	return render(w, e.node(rootInherited(), true))
}

func render(w io.Writer, el svg.Element) error {
	bw := bufio.NewWriter(w)
	if el != nil {
		el.Render(&attrWriter{Writer: bw})
	}
	return bw.Flush()
}

// attrWriter drops zeroAdjust and the space written before it.
type attrWriter struct {
	*bufio.Writer
	space bool
}

func (w *attrWriter) WriteByte(c byte) error {
	if err := w.flushSpace(); err != nil {
		return err
	}
	if c == ' ' {
		w.space = true
		return nil
	}
	return w.Writer.WriteByte(c)
}

func (w *attrWriter) WriteString(s string) (int, error) {
	if w.space && s == zeroAdjust {
		w.space = false
		return len(s), nil
	}
	if err := w.flushSpace(); err != nil {
		return 0, err
	}
	return w.Writer.WriteString(s)
}

func (w *attrWriter) flushSpace() error {
	if !w.space {
		return nil
	}
	w.space = false
	return w.Writer.WriteByte(' ')
}

// props merges the attributes with the style declarations. Style wins.
func (e *Element) props() map[string]string {
	p := make(map[string]string, len(e.Attrs))
	for _, a := range e.Attrs {
		p[a.Name] = a.Value
	}
	if style, ok := p["style"]; ok {
		for _, decl := range strings.Split(style, ";") {
			name, value, ok := strings.Cut(decl, ":")
			if ok {
				p[strings.TrimSpace(name)] = strings.TrimSpace(value)
			}
		}
	}
	return p
}

// node converts e and its children into library nodes. Elements with an
// unknown tag are skipped.
func (e *Element) node(in inherited, omitProlog bool) svg.Element {
	p := e.props()
	switch e.Tag {
	case "svg":
		s := svg.NewSVG()
		s.OmitProlog = omitProlog
		s.Dim = svg.NewDim(number(p["width"]), number(p["height"]))
		s.Ratio = svg.Ratio{Align: "xMidYMid", MeetOrSlice: "meet"}
		if bg := p["background"]; bg != "" {
			var r svg.Rect
			r.Dim = s.Dim
			r.Fill = fill(bg, "")
			r.Class = []string{"background"}
			s.Append(&r)
		}
		for _, c := range e.Children {
			s.Append(c.node(in, true))
		}
		return &s
	case "g":
		in = in.extend(p)
		var g svg.Group
		describe(&g.Id, &g.Class, &g.Data, p)
		g.Fill = fill(p["fill"], p["fill-opacity"])
		g.Stroke = stroke(p, in)
		g.Transform = transform(p["transform"])
		for _, c := range e.Children {
			g.Append(c.node(in, true))
		}
		return &g
	case "rect":
		var r svg.Rect
		describe(&r.Id, &r.Class, &r.Data, p)
		r.Pos = svg.NewPos(number(p["x"]), number(p["y"]))
		r.Dim = svg.NewDim(number(p["width"]), number(p["height"]))
		r.RX, r.RY = number(p["rx"]), number(p["ry"])
		r.Fill = fill(p["fill"], opacity(p))
		r.Stroke = stroke(p, in)
		r.Transform = transform(p["transform"])
		return &r
	case "line":
		var l svg.Line
		describe(&l.Id, &l.Class, &l.Data, p)
		l.Starts = svg.NewPos(number(p["x1"]), number(p["y1"]))
		l.Ends = svg.NewPos(number(p["x2"]), number(p["y2"]))
		l.Fill = fill(p["fill"], "")
		l.Stroke = stroke(p, in)
		l.Transform = transform(p["transform"])
		return &l
	case "circle":
		var c svg.Circle
		describe(&c.Id, &c.Class, &c.Data, p)
		c.Pos = svg.NewPos(number(p["cx"]), number(p["cy"]))
		c.Radius = number(p["r"])
		c.Fill = fill(p["fill"], opacity(p))
		c.Stroke = stroke(p, in)
		c.Transform = transform(p["transform"])
		return &c
	case "path":
		var path svg.Path
		describe(&path.Id, &path.Class, &path.Data, p)
		if e.path != nil {
			e.path.apply(&path)
		}
		path.Fill = fill(p["fill"], opacity(p))
		path.Stroke = stroke(p, in)
		path.Transform = transform(p["transform"])
		return &path
	case "text":
		size := in.fontSize
		if v, ok := p["font-size"]; ok {
			size = length(v, in.fontSize)
		}
		t := svg.NewText(escape(e.Text))
		describe(&t.Id, &t.Class, &t.Data, p)
		t.Pos = svg.NewPos(length(p["x"], size), length(p["y"], size))
		t.Shift = svg.NewPos(length(p["dx"], size), length(p["dy"], size))
		t.Font = svg.Font{Size: size, Family: in.fontFamily}
		if v, ok := p["font-family"]; ok {
			t.Font.Family = families(v)
		}
		t.Anchor = in.anchor
		if v, ok := p["text-anchor"]; ok {
			t.Anchor = v
		}
		t.Fill = fill(p["fill"], opacity(p))
		t.Stroke = stroke(p, in)
		t.Transform = transform(p["transform"])
		return &t
	}
	return nil
}

func (in inherited) extend(p map[string]string) inherited {
	if v, ok := p["font-size"]; ok {
		in.fontSize = length(v, in.fontSize)
	}
	if v, ok := p["font-family"]; ok {
		in.fontFamily = families(v)
	}
	if v, ok := p["text-anchor"]; ok {
		in.anchor = v
	}
	if v, ok := p["stroke-dasharray"]; ok {
		in.dash = dashes(v)
	}
	if v, ok := p["stroke-opacity"]; ok {
		in.strokeOpacity = number(v)
	}
	return in
}

// describe fills the node identity: id, classes and data-* attributes.
func describe(id *string, class *[]string, data *[]svg.Datum, p map[string]string) {
	*id = escape(p["id"])
	*class = strings.Fields(escape(p["class"]))
	var names []string
	for name := range p {
		if strings.HasPrefix(name, "data-") {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range names {
		*data = append(*data, svg.Datum{Name: strings.TrimPrefix(name, "data-"), Value: escape(p[name])})
	}
}

func fill(color, alpha string) svg.Fill {
	if color == "" {
		return svg.Fill{}
	}
	f := svg.NewFill(color)
	f.Opacity = 1
	if alpha != "" {
		f.Opacity = number(alpha)
	}
	return f
}

// opacity folds the element opacity into its fill.
func opacity(p map[string]string) string {
	if v, ok := p["fill-opacity"]; ok {
		return v
	}
	return p["opacity"]
}

func stroke(p map[string]string, in inherited) svg.Stroke {
	color := p["stroke"]
	if color == "" {
		return svg.Stroke{}
	}
	s := svg.NewStroke(color, number(p["stroke-width"]))
	s.DashArray = in.dash
	if v, ok := p["stroke-dasharray"]; ok {
		s.DashArray = dashes(v)
	}
	s.Opacity = in.strokeOpacity
	if v, ok := p["stroke-opacity"]; ok {
		s.Opacity = number(v)
	}
	return s
}

// transform reads the translate, rotate and scale functions.
func transform(v string) svg.Transform {
	var t svg.Transform
	for _, fn := range strings.Split(v, ")") {
		name, args, ok := strings.Cut(strings.TrimSpace(fn), "(")
		if !ok {
			continue
		}
		vs := make([]float64, 3)
		for i, a := range strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' }) {
			if i < len(vs) {
				vs[i] = number(a)
			}
		}
		switch strings.TrimSpace(name) {
		case "translate":
			t.Translate(vs[0], vs[1])
		case "rotate":
			t.Rotate(vs[0], vs[1], vs[2])
		case "scale":
			t.Scale(vs[0], vs[1])
		}
	}
	return t
}

// length resolves px and em lengths against the font size.
func length(v string, fontSize float64) float64 {
	v = strings.TrimSpace(v)
	if n, ok := strings.CutSuffix(v, "em"); ok {
		return number(n) * fontSize
	}
	return number(strings.TrimSuffix(v, "px"))
}

func number(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func dashes(v string) []int {
	var out []int
	for _, f := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
		out = append(out, int(number(f)))
	}
	return out
}

func families(v string) []string {
	var out []string
	for _, f := range strings.Split(v, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// escape makes s safe for svg, which writes text and attribute values
// verbatim.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return strings.ReplaceAll(b.String(), `\`, "&#92;")
}
