package chart

import (
	"math"

	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Gantt draws one row per period with a horizontal bar per present series.
// Bars either overlay from the baseline or split the row between series.
type Gantt struct {
	layout Layout
	mode   schema.GanttLayout
}

// NewGantt returns a Gantt-style chart.
func NewGantt(opts Options) *Gantt {
	l := Layout{
		Width:  800,
		Height: 500,
		Margin: Margin{Top: 40, Right: 100, Bottom: 60, Left: 100},
	}
	mode := opts.GanttLayout
	if mode == "" {
		mode = schema.OverlayLayout
	}
	return &Gantt{layout: l.Resize(opts.Width, opts.Height), mode: mode}
}

// Kind implements Chart.
func (c *Gantt) Kind() schema.ChartKind { return schema.GanttChart }

// Layout implements Chart.
func (c *Gantt) Layout() Layout { return c.layout }

// Draw implements Chart.
func (c *Gantt) Draw(f *Frame) {
	ds := f.Data
	w, h := f.PlotWidth(), f.PlotHeight()
	y := scale.NewBand(ds.Periods(), 0, h, 0.6)
	x := scale.NewLinear(ds.Lo, ds.Hi, 0, w)
	base := x.Scale(ds.Lo)

	Axis{
		Orient:   Left,
		Ticks:    BandTicks(y),
		Extent:   [2]float64{0, h},
		TickSize: -w,
		Class:    "axis-y",
		Grid:     true,
	}.Draw(f.Plot)
	Axis{
		Orient:   Bottom,
		Ticks:    ValueTicks(x, within(x, stepValues(x)), FormatFixed(1)),
		Extent:   [2]float64{0, w},
		TickSize: -h,
		Class:    "axis-x",
		Grid:     true,
	}.Draw(f.Plot).Translate(0, h)

	n := float64(len(ds.Series))
	rowHeight := y.Bandwidth()
	if c.mode == schema.SubdivideLayout && n > 0 {
		rowHeight = y.Bandwidth() / n
	}

	bars := f.Plot.Append(scene.Group().AddClass("bars"))
	for _, r := range ds.Records {
		top, _ := y.Pos(r.Period)
		for i, s := range ds.Series {
			v := r.Get(s.Key)
			if !v.Valid {
				continue
			}
			by, end := top, x.Scale(v.V)
			if c.mode == schema.SubdivideLayout {
				by += float64(i) * rowHeight
			}
			m := Mark{
				Kind:    schema.HBarMark,
				Series:  s.Key,
				Label:   s.Name(),
				Period:  r.Period,
				Value:   v.V,
				Present: true,
				X:       math.Min(base, end),
				Y:       by,
				Width:   math.Abs(end - base),
				Height:  rowHeight,
				Color:   s.Color,
			}
			el := bars.Append(scene.Rect(m.X, m.Y, m.Width, m.Height).Set("fill", s.Color))
			f.AddMark(el, m)
		}
	}

	f.DrawLegend(seriesLegend(ds), LegendStyle{
		X:        w - 150,
		Y:        f.Layout.Margin.Top - 30,
		Box:      &Box{X: -10, Y: -10, Width: 130, Height: legendHeight(len(ds.Series))},
		RowX:     10,
		TextX:    15,
		TextY:    10,
		TextFill: "#000",
	})
}
