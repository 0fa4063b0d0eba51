package chart

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

const eps = 1e-6

func builtin(t *testing.T, kind schema.ChartKind) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.NewBuiltin().Load(context.Background(), string(kind))
	require.NoError(t, err)
	return ds
}

func mount(t *testing.T, c Chart, ds *dataset.Dataset) (*Host, *Result) {
	t.Helper()
	h := NewHost()
	res, err := h.Mount(c, ds)
	require.NoError(t, err)
	t.Cleanup(h.Unmount)
	return h, res
}

func plan3() []dataset.Series {
	return []dataset.Series{
		{Key: "plan", Label: "Plan", Color: "#0000FF", Shape: schema.CircleShape},
		{Key: "revised", Label: "Revised Plan", Color: "#FF0000", Shape: schema.SquareShape},
		{Key: "actual", Label: "Last Year Actuals", Color: "#008000", Shape: schema.DiamondShape},
	}
}

func TestBarMarksFollowScales(t *testing.T) {
	ds := builtin(t, schema.BarChart)
	c := NewBar(Options{})
	_, res := mount(t, c, ds)

	l := c.Layout()
	w, h := l.PlotWidth(), l.PlotHeight()
	x0 := scale.NewBand(ds.Periods(), 0, w, 0.2)
	x1 := scale.NewBand([]string{"plan", "revised", "actual"}, 0, x0.Bandwidth(), 0.05)
	y := scale.NewLinear(0, 20.1, h, 0)

	require.Len(t, res.Marks, 45)
	for _, m := range res.Marks {
		p, ok := x0.Pos(m.Period)
		require.True(t, ok)
		s, ok := x1.Pos(m.Series)
		require.True(t, ok)
		assert.InDelta(t, p+s, m.X, eps, "%s/%s x", m.Period, m.Series)
		assert.InDelta(t, x1.Bandwidth(), m.Width, eps)
		if !m.Present {
			assert.InDelta(t, 0, m.Height, eps, "absent %s/%s draws flat", m.Period, m.Series)
			assert.InDelta(t, h, m.Y, eps)
			assert.Empty(t, m.ID)
			continue
		}
		assert.InDelta(t, y.Scale(m.Value), m.Y, eps)
		assert.InDelta(t, h-y.Scale(m.Value), m.Height, eps)
		assert.NotEmpty(t, m.ID)
	}
}

func TestBarFullHeightExample(t *testing.T) {
	ds := &dataset.Dataset{
		Series: plan3(),
		Records: []dataset.Record{{
			Period: "2021",
			Values: map[string]dataset.Value{
				"plan":    dataset.Some(20),
				"revised": dataset.Some(19),
				"actual":  dataset.Some(6),
			},
		}},
		Lo: 0, Hi: 20,
	}
	c := NewBar(Options{Height: 440})
	require.InDelta(t, 340, c.Layout().PlotHeight(), eps)

	_, res := mount(t, c, ds)
	planBar, ok := res.FindMark("Plan", "2021")
	require.True(t, ok)
	assert.InDelta(t, 340, planBar.Height, eps)
	assert.InDelta(t, 0, planBar.Y, eps)

	actual, ok := res.FindMark("actual", "2021")
	require.True(t, ok)
	assert.InDelta(t, 102, actual.Height, eps)
	assert.InDelta(t, 238, actual.Y, eps)
}

func TestLineSkipsAbsentValues(t *testing.T) {
	ds := &dataset.Dataset{
		Series: []dataset.Series{
			{Key: "x", Label: "X", Color: "blue", Shape: schema.CircleShape},
			{Key: "y", Label: "Y", Color: "red", Shape: schema.SquareShape},
		},
		Lo: 0, Hi: 20,
	}
	for _, p := range []struct {
		period string
		x      dataset.Value
	}{
		{"Jun", dataset.Some(5)},
		{"Jul", dataset.Some(6)},
		{"Aug", dataset.None},
		{"Sep", dataset.Some(8)},
	} {
		ds.Records = append(ds.Records, dataset.Record{
			Period: p.period,
			Values: map[string]dataset.Value{"x": p.x, "y": dataset.Some(3)},
		})
	}

	h, res := mount(t, NewLine(Options{}), ds)
	require.Len(t, res.Lines, 2)

	x := res.Lines[0]
	require.Len(t, x.Segments, 2)
	assert.Equal(t, []string{"Jun", "Jul", "Sep"}, periodsOf(x.Vertices()))

	y := res.Lines[1]
	require.Len(t, y.Segments, 1)
	assert.Equal(t, []string{"Jun", "Jul", "Aug", "Sep"}, periodsOf(y.Vertices()))

	paths := h.Surface().Find("line")
	require.Len(t, paths, 2)
	d, _ := paths[0].Get("d")
	assert.Equal(t, 2, strings.Count(d, "M"), "gap starts a new subpath")
	d, _ = paths[1].Get("d")
	assert.Equal(t, 1, strings.Count(d, "M"))

	assert.Len(t, res.MarksOf("x"), 3)
	assert.Len(t, res.MarksOf("y"), 4)
}

func TestLineBuiltin(t *testing.T) {
	ds := builtin(t, schema.LineChart)
	c := NewLine(Options{})
	h, res := mount(t, c, ds)

	assert.Len(t, res.Marks, 41)
	assert.Equal(t, 41, h.Surface().Count("mark"))
	assert.Equal(t, 41, h.Tooltip().Bound())

	actual := res.Lines[2]
	assert.NotContains(t, periodsOf(actual.Vertices()), "May")
	assert.Len(t, actual.Vertices(), 11)

	l := c.Layout()
	x := scale.NewBand(ds.Periods(), 0, l.PlotWidth(), 0.1)
	y := scale.NewLinear(0, 22, l.PlotHeight(), 0)
	for _, m := range res.Marks {
		cx, _ := x.Center(m.Period)
		assert.InDelta(t, cx, m.X, eps)
		assert.InDelta(t, y.Scale(m.Value), m.Y, eps)
	}
}

func TestMilestoneSymbols(t *testing.T) {
	ds := builtin(t, schema.MilestoneChart)
	_, res := mount(t, NewMilestone(Options{}), ds)

	assert.Len(t, res.Marks, 42)
	assert.Empty(t, res.Lines)

	circle := res.MarksOf("plan")[0]
	assert.InDelta(t, 11.2838, circle.Width, 1e-3)
	square := res.MarksOf("revised")[0]
	assert.InDelta(t, 10, square.Width, eps)
	diamond := res.MarksOf("actual")[0]
	assert.InDelta(t, 18.6121, diamond.Height, 1e-3)
	assert.InDelta(t, 10.7457, diamond.Width, 1e-3)
}

func TestGanttLayouts(t *testing.T) {
	ds := builtin(t, schema.GanttChart)

	tests := []struct {
		name   string
		layout schema.GanttLayout
		split  bool
	}{
		{"overlay", schema.OverlayLayout, false},
		{"subdivide", schema.SubdivideLayout, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewGantt(Options{GanttLayout: tt.layout})
			_, res := mount(t, c, ds)
			require.Len(t, res.Marks, 42, "absent values are omitted")

			l := c.Layout()
			rows := scale.NewBand(ds.Periods(), 0, l.PlotHeight(), 0.6)
			x := scale.NewLinear(0, 20, 0, l.PlotWidth())
			for _, m := range res.Marks {
				assert.Equal(t, schema.HBarMark, m.Kind)
				assert.InDelta(t, 0, m.X, eps)
				assert.InDelta(t, x.Scale(m.Value), m.Width, eps)
				top, _ := rows.Pos(m.Period)
				if !tt.split {
					assert.InDelta(t, top, m.Y, eps)
					assert.InDelta(t, rows.Bandwidth(), m.Height, eps)
				} else {
					assert.InDelta(t, rows.Bandwidth()/3, m.Height, eps)
					assert.GreaterOrEqual(t, m.Y, top-eps)
					assert.LessOrEqual(t, m.Y+m.Height, top+rows.Bandwidth()+eps)
				}
			}
			_, ok := res.FindMark("actual", "Apr")
			assert.False(t, ok)
		})
	}
}

func TestGanttValueBelowDomain(t *testing.T) {
	ds := &dataset.Dataset{
		Series: []dataset.Series{{Key: "plan", Label: "Plan", Color: "blue"}},
		Records: []dataset.Record{
			{Period: "Apr", Values: map[string]dataset.Value{"plan": dataset.Some(-4)}},
			{Period: "May", Values: map[string]dataset.Value{"plan": dataset.Some(6)}},
		},
		Lo: 0, Hi: 10,
	}
	c := NewGantt(Options{})
	h, res := mount(t, c, ds)

	x := scale.NewLinear(0, 10, 0, c.Layout().PlotWidth())
	below, ok := res.FindMark("plan", "Apr")
	require.True(t, ok)
	assert.InDelta(t, x.Scale(-4), below.X, eps, "the bar grows left of the baseline")
	assert.InDelta(t, x.Scale(0)-x.Scale(-4), below.Width, eps)
	assert.Positive(t, below.Width)

	above, ok := res.FindMark("plan", "May")
	require.True(t, ok)
	assert.InDelta(t, 0, above.X, eps)
	assert.InDelta(t, x.Scale(6), above.Width, eps)

	for _, el := range h.Surface().Find("mark") {
		assert.GreaterOrEqual(t, el.GetFloat("width"), 0.0)
	}
}

func TestBarLineSegmentColors(t *testing.T) {
	ds := builtin(t, schema.BarLineChart)
	h, res := mount(t, NewBarLine(Options{}), ds)

	var colors []string
	for _, m := range res.MarksOf(dataset.ActualKey) {
		assert.Equal(t, schema.SegmentMark, m.Kind)
		assert.Empty(t, m.ID)
		colors = append(colors, m.Color)
	}
	g, r := AboveColor, BelowColor
	assert.Equal(t, []string{g, r, r, r, r, r, r, r, g, r, r}, colors)

	bars := res.MarksOf(dataset.YearlyKey)
	require.Len(t, bars, 3)
	years := scale.NewBand([]string{"2021", "2022", "2023"}, 50, 200, 0.4)
	y := scale.NewLinear(0, 20, 350, 50)
	for _, b := range bars {
		px, _ := years.Pos(b.Period)
		assert.InDelta(t, px, b.X, eps)
		assert.InDelta(t, y.Scale(b.Value), b.Y, eps)
		assert.InDelta(t, 350-y.Scale(b.Value), b.Height, eps)
	}

	style, _ := h.Surface().Root().Get("style")
	assert.Equal(t, "background:#f4f4f4", style)
	assert.Equal(t, []string{"Plan", "Actual (Above Plan)", "Actual (Below Plan)"}, labelsOf(res.Legend))
}

func TestMarketShareZones(t *testing.T) {
	ds := builtin(t, schema.MarketShareChart)
	c := NewMarketShare(Options{})
	h, res := mount(t, c, ds)

	w, ht := c.Layout().PlotWidth(), c.Layout().PlotHeight()
	y := scale.NewLinear(6.5, 31, ht, 0)

	bars := res.MarksOf(dataset.ShareKey)
	require.Len(t, bars, 6)
	for _, b := range bars[:3] {
		assert.GreaterOrEqual(t, b.X, 0.0)
		assert.LessOrEqual(t, b.X+b.Width, w*0.2+eps)
		assert.Equal(t, "black", b.Color)
	}
	for _, b := range bars[3:] {
		assert.GreaterOrEqual(t, b.X, w*0.8-eps)
		assert.LessOrEqual(t, b.X+b.Width, w+eps)
		assert.InDelta(t, y.Scale(b.Value), b.Y, eps)
	}
	assert.Equal(t, "#00F", bars[4].Color)

	require.Len(t, res.Lines, 3)
	for _, line := range res.Lines {
		for _, v := range line.Vertices() {
			assert.Greater(t, v.X, w*0.2)
			assert.Less(t, v.X, w*0.8)
		}
	}

	outlined := h.Surface().Find("historical")[0].Children
	fill, _ := outlined[0].Get("fill")
	assert.Equal(t, "none", fill)

	var labels []string
	for _, tick := range h.Surface().Find("axis-y")[0].Find("tick") {
		labels = append(labels, tick.Children[1].Text)
	}
	assert.Equal(t, []string{"12.5%", "18.5%", "24.5%", "30.5%"}, labels)
}

func TestLegendFollowsSeriesOrder(t *testing.T) {
	for _, kind := range []schema.ChartKind{schema.BarChart, schema.LineChart, schema.MilestoneChart, schema.GanttChart, schema.MarketShareChart} {
		t.Run(string(kind), func(t *testing.T) {
			ds := builtin(t, kind)
			c, err := NewRegistry().New(kind, Options{})
			require.NoError(t, err)
			h, res := mount(t, c, ds)

			var want []string
			for _, s := range ds.Series {
				want = append(want, s.Name())
			}
			assert.Equal(t, want, labelsOf(res.Legend))
			assert.Len(t, h.Surface().Find("legend-entry"), len(ds.Series))
		})
	}
}

func TestRedrawIsIdempotent(t *testing.T) {
	for _, kind := range schema.AllChartKinds {
		t.Run(string(kind), func(t *testing.T) {
			c, err := NewRegistry().New(kind, Options{})
			require.NoError(t, err)
			h, first := mount(t, c, builtin(t, kind))
			n := h.Surface().Len()
			marks := h.Surface().Count("mark")

			second, ok := h.Redraw()
			require.True(t, ok)
			assert.Equal(t, n, h.Surface().Len())
			assert.Equal(t, marks, h.Surface().Count("mark"))
			assert.Equal(t, first.Marks, second.Marks)
			assert.Equal(t, first.Lines, second.Lines)
		})
	}
}

func TestRenderWithoutTooltip(t *testing.T) {
	s := scene.NewSurface(0, 0)
	res := Render(NewBar(Options{Width: 1000}), builtin(t, schema.BarChart), s, nil)
	w, _ := s.Size()
	assert.InDelta(t, 1000, w, eps)
	for _, m := range res.Marks {
		assert.Empty(t, m.ID)
	}
	assert.Equal(t, "Bar Graph Representation of Plans and Actuals", s.Find("title")[0].Text)
}

func periodsOf(vs []Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Period
	}
	return out
}

func labelsOf(entries []LegendEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}
