package chart

import (
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Bar draws grouped vertical bars: one band per period, one sub-band per
// series. Absent values draw at zero height.
type Bar struct {
	layout Layout
}

// NewBar returns a grouped bar chart.
func NewBar(opts Options) *Bar {
	l := Layout{
		Width:  800,
		Height: 400,
		Margin: Margin{Top: 40, Right: 100, Bottom: 60, Left: 60},
	}
	return &Bar{layout: l.Resize(opts.Width, opts.Height)}
}

// Kind implements Chart.
func (b *Bar) Kind() schema.ChartKind { return schema.BarChart }

// Layout implements Chart.
func (b *Bar) Layout() Layout { return b.layout }

// Draw implements Chart.
func (b *Bar) Draw(f *Frame) {
	ds := f.Data
	w, h := f.PlotWidth(), f.PlotHeight()

	keys := make([]string, len(ds.Series))
	for i, s := range ds.Series {
		keys[i] = s.Key
	}
	x0 := scale.NewBand(ds.Periods(), 0, w, 0.2)
	x1 := scale.NewBand(keys, 0, x0.Bandwidth(), 0.05)
	y := scale.NewLinear(ds.Lo, ds.Hi, h, 0)
	base := y.Scale(ds.Lo)

	Axis{
		Orient:   Left,
		Ticks:    ValueTicks(y, stepValues(y), nil),
		TickSize: -w,
		Class:    "grid",
		Grid:     true,
		NoLabels: true,
		NoDomain: true,
	}.Draw(f.Plot)
	Axis{
		Orient:   Bottom,
		Ticks:    BandTicks(x0),
		Extent:   [2]float64{0, w},
		TickSize: -h,
		Class:    "axis-x",
		Grid:     true,
	}.Draw(f.Plot).Translate(0, h)
	Axis{
		Orient: Left,
		Ticks:  AutoTicks(y, 10, nil),
		Extent: [2]float64{h, 0},
		Class:  "axis-y",
	}.Draw(f.Plot)
	AxisTitle(f.Plot, w/2, h+f.Layout.Margin.Bottom-10, "Year/Month", false)
	AxisTitle(f.Plot, -h/2, -f.Layout.Margin.Left, "Values", true)

	bars := f.Plot.Append(scene.Group().AddClass("bars"))
	for _, r := range ds.Records {
		px, _ := x0.Pos(r.Period)
		for _, s := range ds.Series {
			sx, _ := x1.Pos(s.Key)
			v := r.Get(s.Key)
			top := y.Scale(v.Or(ds.Lo))
			m := Mark{
				Kind:    schema.BarMark,
				Series:  s.Key,
				Label:   s.Name(),
				Period:  r.Period,
				Value:   v.Or(0),
				Present: v.Valid,
				X:       px + sx,
				Y:       top,
				Width:   x1.Bandwidth(),
				Height:  base - top,
				Color:   s.Color,
			}
			el := bars.Append(scene.Rect(m.X, m.Y, m.Width, m.Height).Set("fill", s.Color))
			f.AddMark(el, m)
		}
	}

	f.DrawLegend(seriesLegend(ds), LegendStyle{X: w + 10, TextX: 15, TextY: 10})
}
