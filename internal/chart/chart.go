// Package chart draws datasets onto a scene surface.
//
// Every chart runs the same pipeline: clear the surface, build scales, draw
// axes and gridlines, draw marks, draw the legend and bind hover tooltips.
package chart

import (
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Chart is a single chart renderer.
type Chart interface {
	Kind() schema.ChartKind
	Layout() Layout
	Draw(f *Frame)
}

// Options adjusts a chart at construction time.
type Options struct {
	Width, Height float64
	GanttLayout   schema.GanttLayout
}

// Mark is one drawn data primitive.
type Mark struct {
	ID      string          `json:"id,omitempty"`
	Kind    schema.MarkKind `json:"kind"`
	Series  string          `json:"series"`
	Label   string          `json:"label"`
	Period  string          `json:"period"`
	Value   float64         `json:"value"`
	Present bool            `json:"present"`
	X       float64         `json:"x"`
	Y       float64         `json:"y"`
	Width   float64         `json:"width"`
	Height  float64         `json:"height"`
	X2      float64         `json:"x2,omitempty"`
	Y2      float64         `json:"y2,omitempty"`
	Color   string          `json:"color"`
	Shape   schema.Shape    `json:"shape,omitempty"`
}

// Vertex is one point of a line path.
type Vertex struct {
	Period string  `json:"period"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Polyline is the geometry of one line series. A gap in the data starts a
// new segment.
type Polyline struct {
	Series   string     `json:"series"`
	Label    string     `json:"label"`
	Color    string     `json:"color"`
	Segments [][]Vertex `json:"segments"`
}

// Vertices returns every vertex across segments.
func (p Polyline) Vertices() []Vertex {
	var out []Vertex
	for _, s := range p.Segments {
		out = append(out, s...)
	}
	return out
}

// Result is what a render pass produced.
type Result struct {
	Kind   schema.ChartKind `json:"kind"`
	Title  string           `json:"title"`
	Width  float64          `json:"width"`
	Height float64          `json:"height"`
	Marks  []Mark           `json:"marks"`
	Legend []LegendEntry    `json:"legend"`
	Lines  []Polyline       `json:"lines"`
}

// FindMark returns the first mark of a series label or key at a period.
func (r *Result) FindMark(series, period string) (Mark, bool) {
	for _, m := range r.Marks {
		if m.Period == period && (m.Label == series || m.Series == series) {
			return m, true
		}
	}
	return Mark{}, false
}

// MarksOf returns the marks of one series key in draw order.
func (r *Result) MarksOf(series string) []Mark {
	var out []Mark
	for _, m := range r.Marks {
		if m.Series == series {
			out = append(out, m)
		}
	}
	return out
}

// Frame is the state of one render pass handed to Chart.Draw.
type Frame struct {
	Surface *scene.Surface
	Plot    *scene.Element
	Layout  Layout
	Data    *dataset.Dataset
	Tip     *Tooltip
	Result  *Result
}

// PlotWidth is the drawable width.
func (f *Frame) PlotWidth() float64 { return f.Layout.PlotWidth() }

// PlotHeight is the drawable height.
func (f *Frame) PlotHeight() float64 { return f.Layout.PlotHeight() }

// AddMark records a mark drawn as el. Present bars and points are bound to
// the tooltip so they can be hovered; line segments are not.
func (f *Frame) AddMark(el *scene.Element, m Mark) {
	el.AddClass("mark")
	if m.Present && m.Kind != schema.SegmentMark && f.Tip != nil {
		m.ID = f.Tip.Bind(el, m.Label, m.Value)
	}
	f.Result.Marks = append(f.Result.Marks, m)
}

// AddLine records a drawn polyline.
func (f *Frame) AddLine(p Polyline) {
	f.Result.Lines = append(f.Result.Lines, p)
}

// Render clears the surface and runs the full pipeline for c. Running it
// again on the same surface yields the same drawing.
func Render(c Chart, ds *dataset.Dataset, s *scene.Surface, tip *Tooltip) *Result {
	l := c.Layout()
	s.Clear()
	s.Resize(l.Width, l.Height)
	if l.Background != "" {
		s.Root().Style("background", l.Background)
	}
	if tip != nil {
		tip.Reset()
	}

	plot := scene.Group().AddClass("plot")
	if !l.Absolute {
		plot.Translate(l.Margin.Left, l.Margin.Top)
	}
	s.Append(plot)

	f := &Frame{
		Surface: s,
		Plot:    plot,
		Layout:  l,
		Data:    ds,
		Tip:     tip,
		Result: &Result{
			Kind:   c.Kind(),
			Title:  ds.Title,
			Width:  l.Width,
			Height: l.Height,
		},
	}
	c.Draw(f)
	drawTitle(f)
	return f.Result
}

// drawTitle centres the dataset title in the top margin.
func drawTitle(f *Frame) {
	if f.Data.Title == "" {
		return
	}
	x, y := f.PlotWidth()/2, -f.Layout.Margin.Top/2
	if f.Layout.Absolute {
		x += f.Layout.Margin.Left
		y += f.Layout.Margin.Top
	}
	f.Plot.Append(scene.Text(x, y, f.Data.Title).
		AddClass("title").
		Set("text-anchor", "middle").
		Style("font-size", "16px"))
}

// seriesLegend lists every declared series in order.
func seriesLegend(ds *dataset.Dataset) []LegendEntry {
	out := make([]LegendEntry, len(ds.Series))
	for i, s := range ds.Series {
		out[i] = LegendEntry{Label: s.Name(), Color: s.Color, Shape: s.Shape}
	}
	return out
}
