package chart

import (
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Line draws one path per series through the band centres with a glyph on
// every present point. Absent values break the path.
type Line struct {
	layout Layout
}

// NewLine returns a line chart.
func NewLine(opts Options) *Line {
	l := Layout{
		Width:  800,
		Height: 400,
		Margin: Margin{Top: 40, Right: 100, Bottom: 60, Left: 60},
	}
	return &Line{layout: l.Resize(opts.Width, opts.Height)}
}

// Kind implements Chart.
func (c *Line) Kind() schema.ChartKind { return schema.LineChart }

// Layout implements Chart.
func (c *Line) Layout() Layout { return c.layout }

// Draw implements Chart.
func (c *Line) Draw(f *Frame) {
	ds := f.Data
	w, h := f.PlotWidth(), f.PlotHeight()
	x := scale.NewBand(ds.Periods(), 0, w, 0.1)
	y := scale.NewLinear(ds.Lo, ds.Hi, h, 0)

	Axis{
		Orient:   Bottom,
		Ticks:    BandTicks(x),
		Extent:   [2]float64{0, w},
		TickSize: -h,
		Class:    "axis-x",
		Grid:     true,
		Rotate:   true,
	}.Draw(f.Plot).Translate(0, h)
	Axis{
		Orient:   Left,
		Ticks:    ValueTicks(y, within(y, stepValues(y)), FormatFixed(1)),
		Extent:   [2]float64{h, 0},
		TickSize: -w,
		Class:    "axis-y",
		Grid:     true,
	}.Draw(f.Plot)

	for _, s := range ds.Series {
		g := f.Plot.Append(scene.Group().AddClass("series").Set("data-key", s.Key))
		line := trace(ds.Records, s, x, y)
		if path := linePath(line); !path.Empty() {
			g.Append(scene.Path(path).
				AddClass("line").
				Set("fill", "none").
				Set("stroke", s.Color).
				Set("stroke-width", "2"))
		}
		f.AddLine(line)

		for _, r := range ds.Present(s.Key) {
			cx, _ := x.Center(r.Period)
			v := r.Get(s.Key).V
			cy := y.Scale(v)
			el, gw, gh := glyph(s.Shape, cx, cy)
			g.Append(el.Set("fill", s.Color))
			f.AddMark(el, Mark{
				Kind:    schema.PointMark,
				Series:  s.Key,
				Label:   s.Name(),
				Period:  r.Period,
				Value:   v,
				Present: true,
				X:       cx,
				Y:       cy,
				Width:   gw,
				Height:  gh,
				Color:   s.Color,
				Shape:   s.Shape,
			})
		}
	}

	f.DrawLegend(seriesLegend(ds), LegendStyle{
		X:        w - 180,
		Y:        20,
		Box:      &Box{X: -10, Y: -10, Width: 180, Height: legendHeight(len(ds.Series))},
		RowX:     10,
		Glyphs:   true,
		TextX:    25,
		TextY:    8,
		TextFill: "#000",
	})
}

// legendHeight fits the background box to the row count; three rows give
// the usual 70px panel.
func legendHeight(rows int) float64 {
	return float64(rows)*20 + 10
}

// trace collects the vertices of one series in record order, starting a
// new segment after every absent value.
func trace(records []dataset.Record, s dataset.Series, x *scale.Band, y *scale.Linear) Polyline {
	p := Polyline{Series: s.Key, Label: s.Name(), Color: s.Color}
	var seg []Vertex
	for _, r := range records {
		v := r.Get(s.Key)
		cx, ok := x.Center(r.Period)
		if !v.Valid || !ok {
			if len(seg) > 0 {
				p.Segments = append(p.Segments, seg)
				seg = nil
			}
			continue
		}
		seg = append(seg, Vertex{Period: r.Period, X: cx, Y: y.Scale(v.V)})
	}
	if len(seg) > 0 {
		p.Segments = append(p.Segments, seg)
	}
	return p
}

// linePath turns polyline segments into path data with one subpath each.
func linePath(p Polyline) *scene.PathData {
	d := &scene.PathData{}
	for _, seg := range p.Segments {
		for i, v := range seg {
			if i == 0 {
				d.MoveTo(v.X, v.Y)
				continue
			}
			d.LineTo(v.X, v.Y)
		}
	}
	return d
}
