package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "2.5", FormatDefault(2.5))
	assert.Equal(t, "20", FormatDefault(20))
	assert.Equal(t, "7.5", FormatFixed(1)(7.5))
	assert.Equal(t, "20.0", FormatFixed(1)(20))
	assert.Equal(t, "12.5%", FormatPercent(12.5))
}

func TestStepValues(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   []float64
	}{
		{"bar domain", 0, 20.1, []float64{0, 2.5, 5, 7.5, 10, 12.5, 15, 17.5, 20}},
		{"line domain", 0, 22, []float64{0, 2.5, 5, 7.5, 10, 12.5, 15, 17.5, 20}},
		{"exact top", 0, 20, []float64{0, 2.5, 5, 7.5, 10, 12.5, 15, 17.5, 20}},
		{"wide domain", 0, 100, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stepValues(scale.NewLinear(tt.lo, tt.hi, 100, 0))
			assert.InDeltaSlice(t, tt.want, got, 1e-9)
		})
	}
}

func TestWithin(t *testing.T) {
	l := scale.NewLinear(6.5, 31, 0, 1)
	assert.Equal(t, []float64{12.5, 30.5}, within(l, []float64{0, 12.5, 30.5, 40}))
}

func TestBandTicks(t *testing.T) {
	b := scale.NewBand([]string{"a", "b"}, 0, 100, 0)
	ticks := BandTicks(b)
	require.Len(t, ticks, 2)
	assert.Equal(t, Tick{Pos: 25, Label: "a"}, ticks[0])
	assert.Equal(t, Tick{Pos: 75, Label: "b"}, ticks[1])
}

func TestAxisDraw(t *testing.T) {
	parent := scene.Group()
	y := scale.NewLinear(0, 10, 100, 0)
	g := Axis{
		Orient:   Left,
		Ticks:    ValueTicks(y, []float64{0, 5, 10}, FormatFixed(1)),
		Extent:   [2]float64{100, 0},
		TickSize: -200,
		Class:    "grid",
		Grid:     true,
	}.Draw(parent)

	require.Len(t, parent.Children, 1)
	assert.True(t, g.HasClass("grid"))
	style, _ := g.Get("style")
	assert.Equal(t, "stroke-dasharray:3 3;stroke-opacity:0.2", style)

	domain := g.Find("domain")
	require.Len(t, domain, 1)
	d, _ := domain[0].Get("d")
	assert.Equal(t, "M-6,100L0,100L0,0L-6,0", d)

	ticks := g.Find("tick")
	require.Len(t, ticks, 3)
	tr, _ := ticks[1].Get("transform")
	assert.Equal(t, "translate(0,50)", tr)
	line := ticks[1].Children[0]
	assert.InDelta(t, 200, line.GetFloat("x2"), 1e-9)
	text := ticks[1].Children[1]
	assert.Equal(t, "5.0", text.Text)
	assert.InDelta(t, -3, text.GetFloat("x"), 1e-9)
}

func TestAxisDrawRotatedWithoutLabels(t *testing.T) {
	parent := scene.Group()
	b := scale.NewBand([]string{"Jan", "Feb"}, 0, 100, 0.1)
	g := Axis{Orient: Bottom, Ticks: BandTicks(b), Rotate: true, NoDomain: true}.Draw(parent)
	assert.Empty(t, g.Find("domain"))
	text := g.Find("tick")[0].Children[1]
	tr, _ := text.Get("transform")
	assert.Equal(t, "rotate(-45)", tr)
	assert.InDelta(t, 9, text.GetFloat("y"), 1e-9)

	g = Axis{Orient: Bottom, Ticks: BandTicks(b), NoLabels: true}.Draw(parent)
	assert.Len(t, g.Find("tick")[0].Children, 1)
}

func TestLegendSwatches(t *testing.T) {
	f := &Frame{Plot: scene.Group(), Result: &Result{}}
	entries := []LegendEntry{
		{Label: "Plan", Color: "blue", Shape: schema.CircleShape},
		{Label: "Revised Plan", Color: "red", Shape: schema.SquareShape},
		{Label: "Last Year Actuals", Color: "green", Shape: schema.DiamondShape},
	}
	g := f.DrawLegend(entries, LegendStyle{X: 10, Y: 20, Box: &Box{X: -10, Y: -10, Width: 180, Height: 70}, RowX: 10, Glyphs: true, TextX: 25, TextY: 8})

	assert.Equal(t, entries, f.Result.Legend)
	rows := g.Find("legend-entry")
	require.Len(t, rows, 3)
	assert.Equal(t, "circle", rows[0].Children[0].Tag)
	assert.Equal(t, "rect", rows[1].Children[0].Tag)
	d, _ := rows[2].Children[0].Get("d")
	assert.Equal(t, "M10,0L15,5L10,10L5,5Z", d)
	tr, _ := rows[2].Get("transform")
	assert.Equal(t, "translate(10,40)", tr)
	assert.Equal(t, "Last Year Actuals", rows[2].Children[1].Text)
}
