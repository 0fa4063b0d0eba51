// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteChart writes a rendered chart using the configured output format.
func (ow *OutWriter) WriteChart(res *chart.Result, surface *scene.Surface, cfg *contract.Config, duration time.Duration) error {
	return PrintChart(res, surface, cfg, duration)
}

// WriteCharts writes the chart catalogue using the configured output format.
func (ow *OutWriter) WriteCharts(charts []schema.ChartInfo, cfg *contract.Config) error {
	return PrintCharts(charts, cfg)
}

// WriteHover writes a simulated hover using the configured output format.
func (ow *OutWriter) WriteHover(res schema.HoverResult, cfg *contract.Config) error {
	return PrintHover(res, cfg)
}
