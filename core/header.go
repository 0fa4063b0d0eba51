package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/dataset"
)

// logRenderHeader prints a concise, 2-line header before a chart is mounted.
// It goes to stderr so the rendered document on stdout stays clean.
func logRenderHeader(cfg *contract.Config, ds *dataset.Dataset, layout chart.Layout) {
	source := "built-in"
	if cfg.DatasetPath != "" {
		source = filepath.Base(cfg.DatasetPath)
	}
	layout = layout.Resize(cfg.Width, cfg.Height)

	// Line 1: the chart and where its data came from
	chartLine := fmt.Sprintf("Chart: %s (dataset: %s)", cfg.Chart, source)
	// Line 2: the surface being drawn
	surfaceLine := fmt.Sprintf("Surface: %gx%g, %d series, %d periods",
		layout.Width, layout.Height, len(ds.Series), len(ds.Periods()))

	if cfg.UseEmojis {
		chartLine = "📊 " + chartLine
		surfaceLine = "📐 " + surfaceLine
	}
	fmt.Fprintln(os.Stderr, chartLine)
	fmt.Fprintln(os.Stderr, surfaceLine)
}
