package chart

import (
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// Segment colors of the actual line.
const (
	AboveColor = "green"
	BelowColor = "red"
)

// BarLine splits the surface into yearly bars on the left quarter and
// monthly plan/actual lines on the rest, sharing one value axis.
type BarLine struct {
	layout Layout
}

// NewBarLine returns a combined bar and line chart.
func NewBarLine(opts Options) *BarLine {
	l := Layout{
		Width:      800,
		Height:     400,
		Margin:     Margin{Top: 50, Right: 50, Bottom: 50, Left: 50},
		Background: "#f4f4f4",
		Absolute:   true,
	}
	return &BarLine{layout: l.Resize(opts.Width, opts.Height)}
}

// Kind implements Chart.
func (c *BarLine) Kind() schema.ChartKind { return schema.BarLineChart }

// Layout implements Chart.
func (c *BarLine) Layout() Layout { return c.layout }

// Draw implements Chart.
func (c *BarLine) Draw(f *Frame) {
	ds := f.Data
	l := f.Layout
	m := l.Margin
	bottom := l.Height - m.Bottom

	years := scale.NewBand(ds.Periods(dataset.YearGroup), m.Left, l.Width/4, 0.4)
	y := scale.NewLinear(ds.Lo, ds.Hi, bottom, m.Top)
	months := scale.NewPoint(ds.Periods(dataset.MonthGroup), l.Width/4+m.Left, l.Width-m.Right)

	yearly, _ := ds.SeriesByKey(dataset.YearlyKey)
	plan, _ := ds.SeriesByKey(dataset.PlanKey)
	actual, _ := ds.SeriesByKey(dataset.ActualKey)

	bars := f.Plot.Append(scene.Group().AddClass("bars"))
	for _, r := range ds.Filter(dataset.YearGroup) {
		v := r.Get(yearly.Key)
		px, _ := years.Pos(r.Period)
		top := y.Scale(v.Or(ds.Lo))
		mk := Mark{
			Kind:    schema.BarMark,
			Series:  yearly.Key,
			Label:   yearly.Name(),
			Period:  r.Period,
			Value:   v.Or(0),
			Present: v.Valid,
			X:       px,
			Y:       top,
			Width:   years.Bandwidth(),
			Height:  bottom - top,
			Color:   yearly.Color,
		}
		el := bars.Append(scene.Rect(mk.X, mk.Y, mk.Width, mk.Height).Set("fill", yearly.Color))
		f.AddMark(el, mk)
	}

	monthly := ds.Filter(dataset.MonthGroup)
	planLine := trace(monthly, plan, months, y)
	if d := linePath(planLine); !d.Empty() {
		f.Plot.Append(scene.Path(d).
			AddClass("line").
			Set("fill", "none").
			Set("stroke", plan.Color).
			Set("stroke-width", "2"))
	}
	f.AddLine(planLine)

	f.AddLine(trace(monthly, actual, months, y))
	segs := f.Plot.Append(scene.Group().AddClass("actual"))
	for i := 1; i < len(monthly); i++ {
		prev, cur := monthly[i-1], monthly[i]
		a0, a1 := prev.Get(actual.Key), cur.Get(actual.Key)
		if !a0.Valid || !a1.Valid {
			continue
		}
		color := BelowColor
		if p0 := prev.Get(plan.Key); p0.Valid && p0.V < a0.V {
			color = AboveColor
		}
		x0, _ := months.Center(prev.Period)
		x1, _ := months.Center(cur.Period)
		y0, y1 := y.Scale(a0.V), y.Scale(a1.V)
		el := segs.Append(scene.Line(x0, y0, x1, y1).
			Set("stroke", color).
			Set("stroke-width", "2"))
		f.AddMark(el, Mark{
			Kind:    schema.SegmentMark,
			Series:  actual.Key,
			Label:   actual.Name(),
			Period:  cur.Period,
			Value:   a1.V,
			Present: true,
			X:       x0,
			Y:       y0,
			X2:      x1,
			Y2:      y1,
			Color:   color,
		})
	}

	Axis{
		Orient: Bottom,
		Ticks:  BandTicks(months),
		Extent: [2]float64{l.Width/4 + m.Left, l.Width - m.Right},
		Class:  "axis-months",
	}.Draw(f.Plot).Translate(0, bottom)
	Axis{
		Orient: Left,
		Ticks:  AutoTicks(y, 10, nil),
		Extent: [2]float64{bottom, m.Top},
		Class:  "axis-y",
	}.Draw(f.Plot).Translate(m.Left, 0)
	Axis{
		Orient: Bottom,
		Ticks:  BandTicks(years),
		Extent: [2]float64{m.Left, l.Width / 4},
		Class:  "axis-years",
	}.Draw(f.Plot).Translate(0, bottom)

	f.DrawLegend([]LegendEntry{
		{Label: plan.Name(), Color: plan.Color},
		{Label: "Actual (Above Plan)", Color: AboveColor},
		{Label: "Actual (Below Plan)", Color: BelowColor},
	}, LegendStyle{X: l.Width - 200, Y: 20, Swatch: 15, TextX: 20, TextY: 12})
}
