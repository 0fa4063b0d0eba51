package chart

import (
	"math"

	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// glyph draws a small fixed-size marker centred on (cx, cy) and returns
// it with its bounding width and height.
func glyph(shape schema.Shape, cx, cy float64) (*scene.Element, float64, float64) {
	switch shape {
	case schema.SquareShape:
		return scene.Rect(cx-4, cy-4, 8, 8), 8, 8
	case schema.DiamondShape:
		var d scene.PathData
		d.MoveTo(cx, cy-5).LineTo(cx+5, cy).LineTo(cx, cy+5).LineTo(cx-5, cy).Close()
		return scene.Path(&d), 10, 10
	default:
		return scene.Circle(cx, cy, 4), 8, 8
	}
}

// symbolArea is the area of milestone symbols in square pixels.
const symbolArea = 100

var tan30 = math.Sqrt(1.0 / 3)

// symbol draws an area-scaled marker around the origin; the caller
// translates it into place.
func symbol(shape schema.Shape, area float64) (*scene.Element, float64, float64) {
	switch shape {
	case schema.SquareShape:
		s := math.Sqrt(area)
		h := s / 2
		var d scene.PathData
		d.MoveTo(-h, -h).LineTo(h, -h).LineTo(h, h).LineTo(-h, h).Close()
		return scene.Path(&d), s, s
	case schema.DiamondShape:
		y := math.Sqrt(area / (tan30 * 2))
		x := y * tan30
		var d scene.PathData
		d.MoveTo(0, -y).LineTo(x, 0).LineTo(0, y).LineTo(-x, 0).Close()
		return scene.Path(&d), 2 * x, 2 * y
	default:
		r := math.Sqrt(area / math.Pi)
		return scene.Circle(0, 0, r), 2 * r, 2 * r
	}
}
