package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/planchart/schema"
)

func TestRegistryKinds(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, schema.AllChartKinds, r.Kinds())

	for _, kind := range r.Kinds() {
		c, err := r.New(kind, Options{})
		require.NoError(t, err)
		assert.Equal(t, kind, c.Kind())
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("pie")
	assert.Error(t, err)
	_, err = r.New("pie", Options{})
	assert.Error(t, err)
	_, err = r.Describe("pie")
	assert.Error(t, err)
}

func TestRegistryDescribe(t *testing.T) {
	info, err := NewRegistry().Describe(schema.GanttChart)
	require.NoError(t, err)
	assert.Equal(t, schema.GanttChart, info.Kind)
	assert.InDelta(t, 800, info.Width, 1e-9)
	assert.InDelta(t, 500, info.Height, 1e-9)
	assert.NotEmpty(t, info.Description)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(schema.BarChart, "custom", func(o Options) Chart { return NewLine(o) })
	assert.Len(t, r.Kinds(), len(schema.AllChartKinds))

	c, err := r.New(schema.BarChart, Options{})
	require.NoError(t, err)
	assert.Equal(t, schema.LineChart, c.Kind())
}

func TestOptionsResize(t *testing.T) {
	c := NewMarketShare(Options{Width: 1000})
	l := c.Layout()
	assert.InDelta(t, 1000, l.Width, 1e-9)
	assert.InDelta(t, 400, l.Height, 1e-9)
	assert.InDelta(t, 920, l.PlotWidth(), 1e-9)
	assert.InDelta(t, 310, l.PlotHeight(), 1e-9)
}
