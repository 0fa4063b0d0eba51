package chart

import (
	"math"
	"strconv"

	"github.com/huangsam/planchart/internal/scale"
	"github.com/huangsam/planchart/internal/scene"
)

// Orient is the side of the plot an axis sits on.
type Orient int

// Axis orientations.
const (
	Bottom Orient = iota
	Left
)

const (
	defaultTickSize = 6
	tickPadding     = 3
	// tickStep is the fixed value-axis step used for small domains.
	tickStep = 2.5
)

// Tick is one labelled position along an axis.
type Tick struct {
	Pos   float64
	Label string
}

// Formatter turns a tick value into its label.
type Formatter func(float64) string

// FormatDefault prints the shortest decimal form.
func FormatDefault(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed prints n decimals.
func FormatFixed(n int) Formatter {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', n, 64)
	}
}

// FormatPercent prints the value followed by a percent sign.
func FormatPercent(v float64) string {
	return FormatDefault(v) + "%"
}

// BandTicks places one tick at the centre of each band.
func BandTicks(b *scale.Band) []Tick {
	keys := b.Domain()
	ticks := make([]Tick, 0, len(keys))
	for _, k := range keys {
		c, _ := b.Center(k)
		ticks = append(ticks, Tick{Pos: c, Label: k})
	}
	return ticks
}

// ValueTicks places ticks at explicit values.
func ValueTicks(l *scale.Linear, values []float64, format Formatter) []Tick {
	if format == nil {
		format = FormatDefault
	}
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Pos: l.Scale(v), Label: format(v)}
	}
	return ticks
}

// AutoTicks places roughly count ticks at round values.
func AutoTicks(l *scale.Linear, count int, format Formatter) []Tick {
	return ValueTicks(l, l.Ticks(count), format)
}

// stepValues enumerates value-axis ticks from lo up to hi inclusive. Small
// domains use a fixed 2.5 step; larger ones fall back to round ticks.
func stepValues(l *scale.Linear) []float64 {
	lo, hi := l.Domain()
	if hi-lo > 10*tickStep {
		return l.Ticks(10)
	}
	return scale.Range(lo, hi+tickStep*1e-6, tickStep)
}

// within keeps the values inside the linear domain.
func within(l *scale.Linear, values []float64) []float64 {
	lo, hi := l.Domain()
	var out []float64
	for _, v := range values {
		if v >= math.Min(lo, hi) && v <= math.Max(lo, hi) {
			out = append(out, v)
		}
	}
	return out
}

// Axis draws ticks, labels and an optional domain line. A negative
// TickSize extends each tick across the plot as a gridline.
type Axis struct {
	Orient   Orient
	Ticks    []Tick
	Extent   [2]float64
	TickSize float64
	Class    string
	// Grid applies the dashed low-opacity gridline style to the group.
	Grid     bool
	NoLabels bool
	NoDomain bool
	// Rotate tilts labels by -45 degrees for dense category axes.
	Rotate bool
	Stroke string
}

// Draw appends the axis group to parent and returns it. The caller
// positions the group.
func (a Axis) Draw(parent *scene.Element) *scene.Element {
	size := a.TickSize
	if size == 0 {
		size = defaultTickSize
	}
	g := scene.Group().AddClass("axis").
		Set("fill", "none").
		Set("font-size", "10").
		Set("font-family", "sans-serif")
	if a.Class != "" {
		g.AddClass(a.Class)
	}
	if a.Orient == Left {
		g.Set("text-anchor", "end")
	} else {
		g.Set("text-anchor", "middle")
	}
	if a.Grid {
		g.Style("stroke-dasharray", "3 3").Style("stroke-opacity", "0.2")
	}
	if a.Stroke != "" {
		g.Style("stroke", a.Stroke)
	}

	if !a.NoDomain {
		var d scene.PathData
		e0, e1 := a.Extent[0], a.Extent[1]
		if a.Orient == Left {
			d.MoveTo(-defaultTickSize, e0).LineTo(0, e0).LineTo(0, e1).LineTo(-defaultTickSize, e1)
		} else {
			d.MoveTo(e0, defaultTickSize).LineTo(e0, 0).LineTo(e1, 0).LineTo(e1, defaultTickSize)
		}
		g.Append(scene.Path(&d).AddClass("domain").Set("stroke", "currentColor"))
	}

	offset := math.Max(size, 0) + tickPadding
	for _, t := range a.Ticks {
		tg := g.Append(scene.Group().AddClass("tick").Set("opacity", "1"))
		var line, text *scene.Element
		if a.Orient == Left {
			tg.Translate(0, t.Pos)
			line = scene.New("line").SetFloat("x2", -size)
			text = scene.New("text").SetFloat("x", -offset).Set("dy", "0.32em")
		} else {
			tg.Translate(t.Pos, 0)
			line = scene.New("line").SetFloat("y2", size)
			text = scene.New("text").SetFloat("y", offset).Set("dy", "0.71em")
		}
		text.Text = t.Label
		tg.Append(line.Set("stroke", "currentColor"))
		if a.NoLabels {
			continue
		}
		text.Set("fill", "currentColor")
		if a.Rotate {
			text.Set("dx", "-1em").Set("dy", "1em").Set("transform", "rotate(-45)").Style("text-anchor", "middle")
		}
		tg.Append(text)
	}
	parent.Append(g)
	return g
}

// AxisTitle writes a centred axis caption. Rotated captions run bottom to
// top along the left edge.
func AxisTitle(parent *scene.Element, x, y float64, text string, rotated bool) *scene.Element {
	el := scene.Text(x, y, text).AddClass("axis-title").Style("text-anchor", "middle")
	if rotated {
		el.Set("transform", "rotate(-90)").Set("dy", "1em")
	}
	return parent.Append(el)
}
