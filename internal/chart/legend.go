package chart

import (
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// LegendEntry is one row of the legend panel.
type LegendEntry struct {
	Label string       `json:"label"`
	Color string       `json:"color"`
	Shape schema.Shape `json:"shape,omitempty"`
}

// Box is a background rectangle relative to the legend origin.
type Box struct {
	X, Y, Width, Height float64
}

// LegendStyle positions the legend panel and its rows.
type LegendStyle struct {
	X, Y float64
	// Box draws a white rounded background when set.
	Box     *Box
	RowX    float64
	RowStep float64
	// Swatch is the side of the square swatch.
	Swatch float64
	// Glyphs draws each entry's shape instead of a square.
	Glyphs       bool
	TextX, TextY float64
	TextFill     string
}

// DrawLegend appends the legend panel to the plot and records its entries.
// Rows follow entry order.
func (f *Frame) DrawLegend(entries []LegendEntry, st LegendStyle) *scene.Element {
	if st.RowStep == 0 {
		st.RowStep = 20
	}
	if st.Swatch == 0 {
		st.Swatch = 10
	}
	g := f.Plot.Append(scene.Group().AddClass("legend").Translate(st.X, st.Y))
	if st.Box != nil {
		g.Append(scene.Rect(st.Box.X, st.Box.Y, st.Box.Width, st.Box.Height).
			Set("fill", "#fff").
			Set("stroke", "#ccc").
			Set("rx", "5").
			Set("ry", "5").
			Style("opacity", "0.8"))
	}
	for i, e := range entries {
		row := g.Append(scene.Group().AddClass("legend-entry").Translate(st.RowX, float64(i)*st.RowStep))
		row.Append(swatch(e, st).Set("fill", e.Color))
		text := scene.Text(st.TextX, st.TextY, e.Label).Style("font-size", "12px")
		if st.TextFill != "" {
			text.Style("fill", st.TextFill)
		}
		row.Append(text)
	}
	f.Result.Legend = append(f.Result.Legend, entries...)
	return g
}

func swatch(e LegendEntry, st LegendStyle) *scene.Element {
	if !st.Glyphs {
		return scene.Rect(0, 0, st.Swatch, st.Swatch)
	}
	switch e.Shape {
	case schema.CircleShape:
		return scene.Circle(10, 5, 5)
	case schema.DiamondShape:
		var d scene.PathData
		d.MoveTo(10, 0).LineTo(15, 5).LineTo(10, 10).LineTo(5, 5).Close()
		return scene.Path(&d)
	default:
		return scene.Rect(5, 0, 10, 10)
	}
}
