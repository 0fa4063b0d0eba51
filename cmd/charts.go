package cmd

import (
	"github.com/huangsam/planchart/core"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/spf13/cobra"
)

// chartsCmd lists every chart kind.
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "List the chart kinds that can be rendered.",
	Long: `List every chart kind with its family, default surface size and the
series of its built-in sample. Output modes without a tabular form
(svg, html, text) print a table.

Examples:
  planchart charts
  planchart charts --output json
  planchart charts --output csv --output-file charts.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCharts(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list charts", err)
		}
	},
}
