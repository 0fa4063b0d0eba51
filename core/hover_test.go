package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

func hoverResult(t *testing.T, series, period string) (schema.HoverResult, error) {
	t.Helper()
	provider := &dataset.MockProvider{}
	provider.On("Load", mock.Anything, "bar").Return(twoPeriods(), nil)
	cfg := &contract.Config{Chart: schema.BarChart, Series: series, Period: period}
	return GetHoverResult(quiet(), cfg, provider)
}

func TestGetHoverResult(t *testing.T) {
	res, err := hoverResult(t, "Plan", "Feb")
	require.NoError(t, err)

	assert.Equal(t, schema.BarChart, res.Chart)
	assert.Equal(t, "Plan", res.Series)
	assert.Equal(t, "Feb", res.Period)
	assert.Equal(t, "m2", res.MarkID)
	assert.Equal(t, 5.0, res.Value)

	require.Len(t, res.Steps, 3)
	enter, move, leave := res.Steps[0], res.Steps[1], res.Steps[2]

	assert.Equal(t, schema.HoverEnter, enter.Event)
	assert.True(t, enter.Handled)
	assert.Equal(t, "visible", enter.State)
	assert.True(t, enter.Visible)
	assert.Equal(t, "Plan: 5", enter.Text)

	assert.Equal(t, schema.HoverMove, move.Event)
	assert.Equal(t, enter.Text, move.Text, "moving keeps the label")
	assert.InDelta(t, enter.X+hoverNudge, move.X, 1e-9)
	assert.InDelta(t, enter.Y+hoverNudge, move.Y, 1e-9)

	assert.Equal(t, schema.HoverLeave, leave.Event)
	assert.True(t, leave.Handled)
	assert.Equal(t, "hidden", leave.State)
	assert.False(t, leave.Visible)
	assert.Empty(t, leave.Text)
}

func TestGetHoverResultByKey(t *testing.T) {
	res, err := hoverResult(t, "actual", "")
	require.NoError(t, err)
	assert.Equal(t, "Actual", res.Series)
	assert.Equal(t, "Jan", res.Period)
	assert.Equal(t, "Actual: 3", res.Steps[0].Text)
}

func TestGetHoverResultNoMark(t *testing.T) {
	tests := []struct {
		name    string
		series  string
		period  string
		wantErr string
	}{
		{"absent value", "Actual", "Feb", "has no value"},
		{"unknown series", "Forecast", "", "no hoverable mark"},
		{"unknown period", "Plan", "Dec", "no hoverable mark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hoverResult(t, tt.series, tt.period)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSimulateHoverOffsets(t *testing.T) {
	tip, err := chart.NewTooltip()
	require.NoError(t, err)
	defer tip.Release()

	m := chart.Mark{X: 100, Y: 50, Width: 20, Height: 40}
	m.ID = tip.Bind(scene.Rect(m.X, m.Y, m.Width, m.Height), "Plan", 12)

	steps := simulateHover(tip, m)
	require.Len(t, steps, 3)
	assert.InDelta(t, 110+chart.TipOffsetX, steps[0].X, 1e-9)
	assert.InDelta(t, 70+chart.TipOffsetY, steps[0].Y, 1e-9)
	assert.Equal(t, "Plan: 12", steps[0].Text)
}

func TestSimulateHoverReleasedTooltip(t *testing.T) {
	tip, err := chart.NewTooltip()
	require.NoError(t, err)
	tip.Release()

	steps := simulateHover(tip, chart.Mark{ID: "m0"})
	require.Len(t, steps, 3)
	for _, s := range steps {
		assert.False(t, s.Handled, "%s is ignored", s.Event)
		assert.False(t, s.Visible)
		assert.Equal(t, "hidden", s.State)
	}
}
