package cmd

import (
	"github.com/huangsam/planchart/core"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/spf13/cobra"
)

// renderCmd draws one chart from its dataset.
var renderCmd = &cobra.Command{
	Use:   "render <chart>",
	Short: "Render a chart as SVG, HTML or data.",
	Long: `Load a dataset and draw it with the selected chart kind.

Chart kinds:
- bar: grouped bars per period, one bar per series
- line: one polyline per series with point glyphs
- milestone: a glyph per series at each period
- gantt: horizontal spans per period
- barline: yearly bars beside monthly plan and actual lines
- marketshare: share lines over historical and year-to-date zones

Without --dataset the built-in sample of the chart kind is drawn.

Examples:
  # Write the bar chart sample as SVG
  planchart render bar --output-file bar.svg

  # Open an interactive page with tooltips
  planchart render line --output html --output-file line.html

  # Draw your own plan data with custom colors
  planchart render gantt --dataset plans.yaml --palette-override 'plan=#1f77b4'

  # Inspect the drawn marks in the terminal
  planchart render milestone --output text`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRender(rootCtx, cfg, core.NewProvider(cfg)); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
