package chart

import (
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Milestone draws an area-scaled symbol per present value without
// connecting lines.
type Milestone struct {
	layout Layout
}

// NewMilestone returns a milestone chart.
func NewMilestone(opts Options) *Milestone {
	l := Layout{
		Width:  800,
		Height: 400,
		Margin: Margin{Top: 40, Right: 120, Bottom: 60, Left: 60},
	}
	return &Milestone{layout: l.Resize(opts.Width, opts.Height)}
}

// Kind implements Chart.
func (c *Milestone) Kind() schema.ChartKind { return schema.MilestoneChart }

// Layout implements Chart.
func (c *Milestone) Layout() Layout { return c.layout }

// Draw implements Chart.
func (c *Milestone) Draw(f *Frame) {
	ds := f.Data
	w, h := f.PlotWidth(), f.PlotHeight()
	x := scale.NewBand(ds.Periods(), 0, w, 0.1)
	y := scale.NewLinear(ds.Lo, ds.Hi, h, 0)
	values := within(y, stepValues(y))

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
		Orient: Left,
		Ticks:  ValueTicks(y, values, FormatFixed(1)),
		Extent: [2]float64{h, 0},
		Class:  "axis-y",
	}.Draw(f.Plot)
	Axis{
		Orient:   Left,
		Ticks:    ValueTicks(y, values, nil),
		TickSize: -w,
		Class:    "grid",
		Grid:     true,
		NoLabels: true,
		NoDomain: true,
		Stroke:   "#e0e0e0",
	}.Draw(f.Plot)

	for _, s := range ds.Series {
		g := f.Plot.Append(scene.Group().AddClass("series").Set("data-key", s.Key))
		for _, r := range ds.Present(s.Key) {
			cx, _ := x.Center(r.Period)
			v := r.Get(s.Key).V
			cy := y.Scale(v)
			el, sw, sh := symbol(s.Shape, symbolArea)
			g.Append(el.Translate(cx, cy).Set("fill", s.Color))
			f.AddMark(el, Mark{
				Kind:    schema.PointMark,
				Series:  s.Key,
				Label:   s.Name(),
				Period:  r.Period,
				Value:   v,
				Present: true,
				X:       cx,
				Y:       cy,
				Width:   sw,
				Height:  sh,
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
