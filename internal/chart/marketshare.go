package chart

import (
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// shareTicks are the labelled value-axis positions of the market share chart.
var shareTicks = []float64{12.5, 18.5, 24.5, 30.5}

// MarketShare splits the plot into three zones: outlined historical bars,
// monthly comparison lines and filled year-to-date bars.
type MarketShare struct {
	layout Layout
}

// NewMarketShare returns a market share composite chart.
func NewMarketShare(opts Options) *MarketShare {
	l := Layout{
		Width:  800,
		Height: 400,
		Margin: Margin{Top: 40, Right: 30, Bottom: 50, Left: 50},
	}
	return &MarketShare{layout: l.Resize(opts.Width, opts.Height)}
}

// Kind implements Chart.
func (c *MarketShare) Kind() schema.ChartKind { return schema.MarketShareChart }

// Layout implements Chart.
func (c *MarketShare) Layout() Layout { return c.layout }

// Draw implements Chart.
func (c *MarketShare) Draw(f *Frame) {
	ds := f.Data
	w, h := f.PlotWidth(), f.PlotHeight()

	historicalX := scale.NewBand(ds.Periods(dataset.HistoricalGroup), 0, w*0.2, 0.2)
	monthlyX := scale.NewBand(ds.Periods(dataset.MonthGroup), w*0.2, w*0.8, 0.1)
	ytdX := scale.NewBand(ds.Periods(dataset.YTDGroup), w*0.8, w, 0.2)
	y := scale.NewLinear(ds.Lo, ds.Hi, h, 0)

	for _, zone := range []struct {
		x     *scale.Band
		class string
	}{
		{historicalX, "axis-historical"},
		{monthlyX, "axis-monthly"},
		{ytdX, "axis-ytd"},
	} {
		r0, r1 := zone.x.Range()
		Axis{
			Orient: Bottom,
			Ticks:  BandTicks(zone.x),
			Extent: [2]float64{r0, r1},
			Class:  zone.class,
		}.Draw(f.Plot).Translate(0, h)
	}
	ticks := ValueTicks(y, within(y, shareTicks), FormatPercent)
	if len(ticks) == 0 {
		ticks = AutoTicks(y, 5, FormatPercent)
	}
	Axis{
		Orient: Left,
		Ticks:  ticks,
		Extent: [2]float64{h, 0},
		Class:  "axis-y",
	}.Draw(f.Plot)

	share, _ := ds.SeriesByKey(dataset.ShareKey)

	historical := f.Plot.Append(scene.Group().AddClass("historical"))
	for _, r := range ds.Filter(dataset.HistoricalGroup) {
		el, m := c.bar(r, share, historicalX, y, h)
		el.Set("fill", "none").Set("stroke", share.Color).Set("stroke-width", "1")
		historical.Append(el)
		f.AddMark(el, m)
	}

	ytd := f.Plot.Append(scene.Group().AddClass("ytd"))
	for _, r := range ds.Filter(dataset.YTDGroup) {
		el, m := c.bar(r, share, ytdX, y, h)
		if r.Color != "" {
			m.Color = r.Color
		}
		el.Set("fill", m.Color)
		ytd.Append(el)
		f.AddMark(el, m)
	}

	monthly := ds.Filter(dataset.MonthGroup)
	for _, key := range []string{dataset.CurrentKey, dataset.PreviousKey, dataset.ReferenceKey} {
		s, ok := ds.SeriesByKey(key)
		if !ok {
			continue
		}
		line := trace(monthly, s, monthlyX, y)
		if d := linePath(line); !d.Empty() {
			f.Plot.Append(scene.Path(d).
				AddClass("line").
				Set("data-key", s.Key).
				Set("fill", "none").
				Set("stroke", s.Color).
				Set("stroke-width", "2"))
		}
		f.AddLine(line)
	}

	f.DrawLegend(seriesLegend(ds), LegendStyle{
		X:        w*0.8 + 10,
		Y:        10,
		Box:      &Box{X: -10, Y: -10, Width: w*0.2 - 10, Height: legendHeight(len(ds.Series))},
		RowX:     0,
		TextX:    15,
		TextY:    10,
		TextFill: "#000",
	})
}

// bar builds a zero-based vertical bar for one record.
func (c *MarketShare) bar(r dataset.Record, s dataset.Series, x *scale.Band, y *scale.Linear, h float64) (*scene.Element, Mark) {
	v := r.Get(s.Key)
	px, _ := x.Pos(r.Period)
	top := y.Scale(v.Or(0))
	if !v.Valid {
		top = h
	}
	m := Mark{
		Kind:    schema.BarMark,
		Series:  s.Key,
		Label:   s.Name(),
		Period:  r.Period,
		Value:   v.Or(0),
		Present: v.Valid,
		X:       px,
		Y:       top,
		Width:   x.Bandwidth(),
		Height:  h - top,
		Color:   s.Color,
	}
	return scene.Rect(m.X, m.Y, m.Width, m.Height), m
}
