package chart

import (
	"fmt"

	"github.com/huangsam/planchart/schema"
)

// Constructor builds a chart from options.
type Constructor func(Options) Chart

type entry struct {
	ctor        Constructor
	description string
}

// Registry maps chart kinds to constructors.
type Registry struct {
	entries map[schema.ChartKind]entry
	order   []schema.ChartKind
}

// NewRegistry returns a registry with every built-in chart.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[schema.ChartKind]entry)}
	r.Register(schema.BarChart, "Grouped bars per period, one bar per series",
		func(o Options) Chart { return NewBar(o) })
	r.Register(schema.LineChart, "One line per series with a glyph on each point",
		func(o Options) Chart { return NewLine(o) })
	r.Register(schema.MilestoneChart, "Area-scaled symbols per series without lines",
		func(o Options) Chart { return NewMilestone(o) })
	r.Register(schema.GanttChart, "Horizontal bars per period, overlaid or subdivided",
		func(o Options) Chart { return NewGantt(o) })
	r.Register(schema.BarLineChart, "Yearly bars beside monthly plan and actual lines",
		func(o Options) Chart { return NewBarLine(o) })
	r.Register(schema.MarketShareChart, "Historical bars, monthly lines and YTD bars",
		func(o Options) Chart { return NewMarketShare(o) })
	return r
}

// Register adds or replaces a chart kind.
func (r *Registry) Register(kind schema.ChartKind, description string, ctor Constructor) {
	if _, ok := r.entries[kind]; !ok {
		r.order = append(r.order, kind)
	}
	r.entries[kind] = entry{ctor: ctor, description: description}
}

// Lookup returns the constructor of a chart kind.
func (r *Registry) Lookup(kind schema.ChartKind) (Constructor, error) {
	e, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
	return e.ctor, nil
}

// New builds a chart of the given kind.
func (r *Registry) New(kind schema.ChartKind, opts Options) (Chart, error) {
	ctor, err := r.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return ctor(opts), nil
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []schema.ChartKind {
	return append([]schema.ChartKind(nil), r.order...)
}

// Describe returns the catalogue entry of a kind. Series are filled in by
// the caller since they come from the dataset.
func (r *Registry) Describe(kind schema.ChartKind) (schema.ChartInfo, error) {
	e, ok := r.entries[kind]
	if !ok {
		return schema.ChartInfo{}, fmt.Errorf("unknown chart kind %q", kind)
	}
	l := e.ctor(Options{}).Layout()
	return schema.ChartInfo{
		Kind:        kind,
		Description: e.description,
		Width:       l.Width,
		Height:      l.Height,
	}, nil
}
