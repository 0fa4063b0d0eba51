package core

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/schema"
)

func quiet() context.Context {
	return WithSuppressHeader(context.Background())
}

// twoPeriods is a small bar dataset with one absent value.
func twoPeriods() *dataset.Dataset {
	return &dataset.Dataset{
		Name:  "bar",
		Title: "Two periods",
		Series: []dataset.Series{
			{Key: "plan", Label: "Plan", Color: "#0000FF"},
			{Key: "actual", Label: "Actual", Color: "#008000"},
		},
		Records: []dataset.Record{
			{Period: "Jan", Values: map[string]dataset.Value{"plan": dataset.Some(4), "actual": dataset.Some(3)}},
			{Period: "Feb", Values: map[string]dataset.Value{"plan": dataset.Some(5)}},
		},
		Lo: 0, Hi: 10,
	}
}

func TestNewProvider(t *testing.T) {
	assert.IsType(t, &dataset.Builtin{}, NewProvider(&contract.Config{}))
	assert.IsType(t, &dataset.File{}, NewProvider(&contract.Config{DatasetPath: "plans.yaml"}))
}

func TestGetRenderResultBuiltin(t *testing.T) {
	cfg := &contract.Config{Chart: schema.BarChart}
	res, svg, err := GetRenderResult(quiet(), cfg, dataset.NewBuiltin())
	require.NoError(t, err)

	assert.Equal(t, schema.BarChart, res.Kind)
	assert.Len(t, res.Marks, 45)
	assert.True(t, strings.HasPrefix(svg, `<?xml`))
	assert.Contains(t, svg, `data-series="Revised Plan"`)
}

func TestGetRenderResultErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *contract.Config
		wantErr string
	}{
		{"missing chart", &contract.Config{}, "chart kind is required"},
		{"unknown chart", &contract.Config{Chart: "pie"}, "pie"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GetRenderResult(quiet(), tt.cfg, dataset.NewBuiltin())
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRenderAppliesOverrides(t *testing.T) {
	ds := twoPeriods()
	provider := &dataset.MockProvider{}
	provider.On("Load", mock.Anything, "bar").Return(ds, nil)

	cfg := &contract.Config{
		Chart:   schema.BarChart,
		Title:   "Quarterly",
		Width:   640,
		Palette: map[string]string{"plan": "#123456", "ghost": "#000000"},
	}
	res, svg, err := GetRenderResult(quiet(), cfg, provider)
	require.NoError(t, err)
	provider.AssertExpectations(t)

	assert.Equal(t, "Quarterly", res.Title)
	assert.Equal(t, 640.0, res.Width)
	assert.Contains(t, svg, `fill="#123456"`)

	plans := res.MarksOf("plan")
	require.Len(t, plans, 2)
	for _, m := range plans {
		assert.Equal(t, "#123456", m.Color)
	}

	// the provider's dataset is not modified
	assert.Equal(t, "#0000FF", ds.Series[0].Color)
	assert.Equal(t, "Two periods", ds.Title)
}

func TestRenderProviderErrors(t *testing.T) {
	broken := twoPeriods()
	broken.Hi = broken.Lo

	tests := []struct {
		name    string
		ds      *dataset.Dataset
		err     error
		wantErr string
	}{
		{"load failure", nil, errors.New("disk on fire"), "failed to load dataset: disk on fire"},
		{"invalid dataset", broken, nil, "invalid dataset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &dataset.MockProvider{}
			provider.On("Load", mock.Anything, "bar").Return(tt.ds, tt.err)
			_, _, err := GetRenderResult(quiet(), &contract.Config{Chart: schema.BarChart}, provider)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetChartCatalogue(t *testing.T) {
	provider := &dataset.MockProvider{}
	provider.On("Load", mock.Anything, "bar").Return(twoPeriods(), nil)
	provider.On("Load", mock.Anything, mock.Anything).Return(nil, dataset.ErrUnknownDataset)

	charts, err := GetChartCatalogue(context.Background(), provider)
	require.NoError(t, err)
	require.Len(t, charts, len(schema.AllChartKinds))

	assert.Equal(t, schema.BarChart, charts[0].Kind)
	assert.Equal(t, "Two periods", charts[0].Title)
	assert.Equal(t, []string{"Plan", "Actual"}, charts[0].Series)
	for _, c := range charts[1:] {
		assert.Empty(t, c.Title)
		assert.Empty(t, c.Series)
		assert.NotEmpty(t, c.Description)
		assert.Positive(t, c.Width)
	}
}

func TestGetChartCatalogueFailure(t *testing.T) {
	provider := &dataset.MockProvider{}
	provider.On("Load", mock.Anything, mock.Anything).Return(nil, errors.New("unreadable"))

	_, err := GetChartCatalogue(context.Background(), provider)
	assert.ErrorContains(t, err, "unreadable")
}

func TestGetChartCatalogueBuiltin(t *testing.T) {
	charts, err := GetChartCatalogue(context.Background(), dataset.NewBuiltin())
	require.NoError(t, err)
	require.Len(t, charts, len(schema.AllChartKinds))
	assert.Equal(t, "Milestone Chart", charts[2].Title)
	for _, c := range charts {
		assert.NotEmpty(t, c.Series, "%s has a sample", c.Kind)
	}
}

func TestExecuteRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.json")
	cfg := &contract.Config{Chart: schema.LineChart, Output: schema.JSONOut, OutputFile: path, Precision: 1}
	require.NoError(t, ExecuteRender(quiet(), cfg, dataset.NewBuiltin()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var res chart.Result
	require.NoError(t, json.Unmarshal(content, &res))
	assert.Equal(t, schema.LineChart, res.Kind)
	assert.NotEmpty(t, res.Lines)
}

func TestExecuteChartsWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: path}
	require.NoError(t, ExecuteCharts(context.Background(), cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var charts []schema.EnrichedChartInfo
	require.NoError(t, json.Unmarshal(content, &charts))
	assert.Len(t, charts, len(schema.AllChartKinds))
	assert.Equal(t, 1, charts[0].Rank)
}
