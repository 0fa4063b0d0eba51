// Package core has core logic for loading datasets, rendering charts and simulating hovers.
package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/outwriter"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// registry holds every chart kind the CLI can render.
var registry = chart.NewRegistry()

// RenderOutput is a chart mounted on a host surface.
type RenderOutput struct {
	Result   *chart.Result
	Surface  *scene.Surface
	Duration time.Duration
}

// NewProvider returns the file provider when a dataset path is configured
// and the built-in samples otherwise.
func NewProvider(cfg *contract.Config) dataset.Provider {
	if cfg.DatasetPath != "" {
		return dataset.NewFile(cfg.DatasetPath)
	}
	return dataset.NewBuiltin()
}

// ExecuteRender mounts the configured chart on a fresh host and writes it.
// It serves as the main entry point for the 'render' command.
func ExecuteRender(ctx context.Context, cfg *contract.Config, provider dataset.Provider) error {
	host := chart.NewHost()
	defer host.Unmount()

	out, err := renderOn(ctx, host, cfg, provider)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteChart(out.Result, out.Surface, cfg, out.Duration)
}

// ExecuteCharts writes the catalogue of chart kinds with their sample datasets.
// It serves as the main entry point for the 'charts' command.
func ExecuteCharts(ctx context.Context, cfg *contract.Config) error {
	charts, err := GetChartCatalogue(ctx, dataset.NewBuiltin())
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCharts(charts, cfg)
}

// ExecuteHover renders the configured chart and replays a pointer entering,
// moving over and leaving one mark.
// It serves as the main entry point for the 'hover' command.
func ExecuteHover(ctx context.Context, cfg *contract.Config, provider dataset.Provider) error {
	res, err := GetHoverResult(ctx, cfg, provider)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteHover(res, cfg)
}

// GetRenderResult renders the configured chart and returns its result with
// the standalone SVG document.
func GetRenderResult(ctx context.Context, cfg *contract.Config, provider dataset.Provider) (*chart.Result, string, error) {
	host := chart.NewHost()
	defer host.Unmount()

	out, err := renderOn(ctx, host, cfg, provider)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := out.Surface.Render(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render SVG: %w", err)
	}
	return out.Result, buf.String(), nil
}

// GetHoverResult renders the configured chart and simulates a hover over the
// mark selected by cfg.Series and cfg.Period.
func GetHoverResult(ctx context.Context, cfg *contract.Config, provider dataset.Provider) (schema.HoverResult, error) {
	host := chart.NewHost()
	defer host.Unmount()

	out, err := renderOn(ctx, host, cfg, provider)
	if err != nil {
		return schema.HoverResult{}, err
	}
	m, err := selectMark(out.Result, cfg.Series, cfg.Period)
	if err != nil {
		return schema.HoverResult{}, err
	}
	return schema.HoverResult{
		Chart:  cfg.Chart,
		Series: m.Label,
		Period: m.Period,
		MarkID: m.ID,
		Value:  m.Value,
		Steps:  simulateHover(host.Tooltip(), m),
	}, nil
}

// GetChartCatalogue describes every registered chart kind. Titles and series
// come from the provider's dataset of the same name when it has one.
func GetChartCatalogue(ctx context.Context, provider dataset.Provider) ([]schema.ChartInfo, error) {
	var charts []schema.ChartInfo
	for _, kind := range registry.Kinds() {
		info, err := registry.Describe(kind)
		if err != nil {
			return nil, err
		}
		ds, err := provider.Load(ctx, string(kind))
		switch {
		case errors.Is(err, dataset.ErrUnknownDataset):
			// no sample for this kind
		case err != nil:
			return nil, fmt.Errorf("failed to load dataset %s: %w", kind, err)
		default:
			info.Title = ds.Title
			for _, s := range ds.Series {
				info.Series = append(info.Series, s.Name())
			}
		}
		charts = append(charts, info)
	}
	return charts, nil
}

// renderOn loads the dataset and mounts the configured chart on host.
func renderOn(ctx context.Context, host *chart.Host, cfg *contract.Config, provider dataset.Provider) (*RenderOutput, error) {
	start := time.Now()
	if cfg.Chart == "" {
		return nil, errors.New("chart kind is required")
	}
	c, err := registry.New(cfg.Chart, chartOptions(cfg))
	if err != nil {
		return nil, err
	}
	ds, err := loadDataset(ctx, cfg, provider)
	if err != nil {
		return nil, err
	}
	if !shouldSuppressHeader(ctx) {
		logRenderHeader(cfg, ds, c.Layout())
	}

	res, err := host.Mount(c, ds)
	if err != nil {
		return nil, fmt.Errorf("failed to mount %s chart: %w", cfg.Chart, err)
	}
	return &RenderOutput{
		Result:   res,
		Surface:  host.Surface(),
		Duration: time.Since(start),
	}, nil
}

// loadDataset fetches the chart's dataset and applies the title and palette overrides.
func loadDataset(ctx context.Context, cfg *contract.Config, provider dataset.Provider) (*dataset.Dataset, error) {
	ds, err := provider.Load(ctx, string(cfg.Chart))
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	// The provider's dataset stays untouched; WithPalette returns a copy
	ds = ds.WithPalette(cfg.Palette)
	for _, key := range slices.Sorted(maps.Keys(cfg.Palette)) {
		if _, ok := ds.SeriesByKey(key); !ok {
			contract.LogWarn("Palette entry ignored", fmt.Errorf("%s chart has no series %q", cfg.Chart, key))
		}
	}
	if cfg.Title != "" {
		ds.Title = cfg.Title
	}
	return ds, nil
}

func chartOptions(cfg *contract.Config) chart.Options {
	return chart.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		GanttLayout: cfg.GanttLayout,
	}
}
