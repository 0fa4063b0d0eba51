// Package scale maps data values to pixel coordinates.
//
// Band and Point scales place ordered categories along a pixel range.
// Linear interpolates numbers over a fixed domain. None of them clamp:
// values outside the declared domain map outside the range.
package scale

import (
	"math"
)

// defaultAlign centers the bands inside the range.
const defaultAlign = 0.5

// Band maps each category key to a contiguous pixel band.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	inner   float64
	outer   float64
	align   float64
	step    float64
	width   float64
	start   float64
	reverse bool
}

// NewBand builds a band scale over domain spanning [r0, r1].
// The padding is applied both between bands and at the outer edges, as a
// fraction of the step.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	return newBand(domain, r0, r1, padding, padding)
}

// NewPoint builds a point scale: bands of zero width, one per category,
// evenly spaced with the first and last point on the range edges.
func NewPoint(domain []string, r0, r1 float64) *Band {
	return newBand(domain, r0, r1, 1, 0)
}

func newBand(domain []string, r0, r1, inner, outer float64) *Band {
	b := &Band{
		domain: append([]string(nil), domain...),
		index:  make(map[string]int, len(domain)),
		r0:     r0,
		r1:     r1,
		inner:  clampUnit(inner),
		outer:  math.Max(0, outer),
		align:  defaultAlign,
	}
	for i, key := range b.domain {
		if _, dup := b.index[key]; !dup {
			b.index[key] = i
		}
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	lo, hi := b.r0, b.r1
	b.reverse = hi < lo
	if b.reverse {
		lo, hi = hi, lo
	}
	b.step = (hi - lo) / math.Max(1, n-b.inner+b.outer*2)
	b.start = lo + (hi-lo-b.step*(n-b.inner))*b.align
	b.width = b.step * (1 - b.inner)
}

// Pos returns the start of the band for key. The second result is false
// when key is not part of the domain.
func (b *Band) Pos(key string) (float64, bool) {
	i, ok := b.index[key]
	if !ok {
		return 0, false
	}
	if b.reverse {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Center returns the middle of the band for key.
func (b *Band) Center(key string) (float64, bool) {
	p, ok := b.Pos(key)
	if !ok {
		return 0, false
	}
	return p + b.width/2, true
}

// Bandwidth is the pixel width of every band.
func (b *Band) Bandwidth() float64 { return b.width }

// Step is the distance between the starts of adjacent bands.
func (b *Band) Step() float64 { return b.step }

// Domain returns a copy of the category keys in order.
func (b *Band) Domain() []string { return append([]string(nil), b.domain...) }

// Range returns the pixel range the scale was built with.
func (b *Band) Range() (float64, float64) { return b.r0, b.r1 }

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Linear interpolates a numeric domain onto a pixel range.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale mapping [d0, d1] onto [r0, r1].
// Use r0 > r1 for a vertical axis where larger values draw higher.
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Scale maps v to a pixel coordinate. A degenerate domain maps everything
// to the middle of the range.
func (l *Linear) Scale(v float64) float64 {
	span := l.d1 - l.d0
	if span == 0 {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + (v-l.d0)/span*(l.r1-l.r0)
}

// Domain returns the numeric domain.
func (l *Linear) Domain() (float64, float64) { return l.d0, l.d1 }

// Range returns the pixel range.
func (l *Linear) Range() (float64, float64) { return l.r0, l.r1 }

// Ticks returns roughly count evenly spaced, human friendly values inside
// the domain. Steps are 1, 2 or 5 times a power of ten.
func (l *Linear) Ticks(count int) []float64 {
	lo, hi := l.d0, l.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	if count <= 0 || lo == hi {
		return []float64{lo}
	}
	i1, i2, inc := tickSpec(lo, hi, float64(count))
	if i2 < i1 {
		return nil
	}
	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := range n {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns the first and last tick index and the increment.
// A negative increment means ticks are index / -inc, which keeps
// fractional steps exact.
func tickSpec(start, stop, count float64) (float64, float64, float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Range enumerates start, start+step, ... up to but excluding stop.
func Range(start, stop, step float64) []float64 {
	if step == 0 {
		return nil
	}
	n := int(math.Max(0, math.Ceil((stop-start)/step)))
	out := make([]float64, n)
	for i := range n {
		out[i] = start + float64(i)*step
	}
	return out
}
