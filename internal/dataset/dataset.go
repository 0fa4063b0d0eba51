// Package dataset defines the records charts are drawn from and the
// providers that supply them.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/huangsam/planchart/schema"
)

// Value is an optional number. The zero Value is absent.
type Value struct {
	V     float64
	Valid bool
}

// Some returns a present value.
func Some(v float64) Value { return Value{V: v, Valid: true} }

// None is the absent value.
var None = Value{}

// Or returns the value, or def when absent.
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.V
}

// String formats the value in its shortest decimal form, or "null".
func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

// Series is a named value channel with its display bindings.
type Series struct {
	Key   string       `json:"key" yaml:"key"`
	Label string       `json:"label" yaml:"label"`
	Color string       `json:"color" yaml:"color"`
	Shape schema.Shape `json:"shape,omitempty" yaml:"shape,omitempty"`
}

// Name returns the label, falling back to the key.
func (s Series) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Key
}

// Record holds the values of one period.
type Record struct {
	Period string
	Group  string
	Color  string
	Values map[string]Value
}

// Get returns the value of the series for this period.
func (r Record) Get(key string) Value {
	return r.Values[key]
}

// Dataset is an ordered sequence of records plus the series they carry.
type Dataset struct {
	Name    string
	Title   string
	Series  []Series
	Records []Record
	// Lo and Hi bound the value axis. Values above Hi draw past the plot.
	Lo, Hi float64
}

// Provider supplies datasets by name.
type Provider interface {
	Load(ctx context.Context, name string) (*Dataset, error)
}

// ErrUnknownDataset is returned when a provider has no dataset of that name.
var ErrUnknownDataset = errors.New("unknown dataset")

// Periods returns the period keys in record order. When groups are given,
// only records of those groups are included.
func (d *Dataset) Periods(groups ...string) []string {
	var out []string
	for _, r := range d.Records {
		if len(groups) > 0 && !contains(groups, r.Group) {
			continue
		}
		out = append(out, r.Period)
	}
	return out
}

// Filter returns the records of one group, in order.
func (d *Dataset) Filter(group string) []Record {
	var out []Record
	for _, r := range d.Records {
		if r.Group == group {
			out = append(out, r)
		}
	}
	return out
}

// Column returns the values of a series in record order.
func (d *Dataset) Column(key string) []Value {
	out := make([]Value, len(d.Records))
	for i, r := range d.Records {
		out[i] = r.Get(key)
	}
	return out
}

// Present returns the records where the series has a value.
func (d *Dataset) Present(key string) []Record {
	var out []Record
	for _, r := range d.Records {
		if r.Get(key).Valid {
			out = append(out, r)
		}
	}
	return out
}

// Max returns the largest present value across all series, or NaN when
// nothing is present.
func (d *Dataset) Max() float64 {
	m := math.NaN()
	for _, r := range d.Records {
		for _, v := range r.Values {
			if v.Valid && (math.IsNaN(m) || v.V > m) {
				m = v.V
			}
		}
	}
	return m
}

// SeriesByKey finds a series definition.
func (d *Dataset) SeriesByKey(key string) (Series, bool) {
	for _, s := range d.Series {
		if s.Key == key {
			return s, true
		}
	}
	return Series{}, false
}

// Validate checks the structural invariants: periods are unique across the
// dataset, values only reference declared series, numbers are finite and
// the domain is ordered. Values past the domain are allowed; they draw
// outside the plot.
func (d *Dataset) Validate() error {
	if len(d.Series) == 0 {
		return fmt.Errorf("dataset %q declares no series", d.Name)
	}
	if !finite(d.Lo) || !finite(d.Hi) {
		return fmt.Errorf("dataset %q has a non-finite domain [%v, %v]", d.Name, d.Lo, d.Hi)
	}
	if !(d.Lo < d.Hi) {
		return fmt.Errorf("dataset %q has an empty domain [%v, %v]", d.Name, d.Lo, d.Hi)
	}
	keys := make(map[string]struct{}, len(d.Series))
	for _, s := range d.Series {
		if s.Key == "" {
			return fmt.Errorf("dataset %q has a series without key", d.Name)
		}
		if _, dup := keys[s.Key]; dup {
			return fmt.Errorf("dataset %q declares series %q twice", d.Name, s.Key)
		}
		if s.Shape != "" {
			if _, ok := schema.ValidShapes[s.Shape]; !ok {
				return fmt.Errorf("series %q has invalid shape %q", s.Key, s.Shape)
			}
		}
		keys[s.Key] = struct{}{}
	}
	seen := make(map[string]struct{}, len(d.Records))
	for _, r := range d.Records {
		if r.Period == "" {
			return fmt.Errorf("dataset %q has a record without period", d.Name)
		}
		if _, dup := seen[r.Period]; dup {
			return fmt.Errorf("dataset %q repeats period %q", d.Name, r.Period)
		}
		seen[r.Period] = struct{}{}
		for k, v := range r.Values {
			if _, ok := keys[k]; !ok {
				return fmt.Errorf("period %q references undeclared series %q", r.Period, k)
			}
			if v.Valid && !finite(v.V) {
				return fmt.Errorf("period %q has a non-finite %s value %v", r.Period, k, v.V)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers can adjust series bindings safely.
func (d *Dataset) Clone() *Dataset {
	c := *d
	c.Series = append([]Series(nil), d.Series...)
	c.Records = make([]Record, len(d.Records))
	for i, r := range d.Records {
		vals := make(map[string]Value, len(r.Values))
		for k, v := range r.Values {
			vals[k] = v
		}
		r.Values = vals
		c.Records[i] = r
	}
	return &c
}

// WithPalette returns a copy with series colors overridden by key.
func (d *Dataset) WithPalette(palette map[string]string) *Dataset {
	c := d.Clone()
	for i, s := range c.Series {
		if color, ok := palette[s.Key]; ok && color != "" {
			c.Series[i].Color = color
		}
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
