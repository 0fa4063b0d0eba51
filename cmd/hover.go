package cmd

import (
	"github.com/huangsam/planchart/core"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/spf13/cobra"
)

// hoverCmd replays a pointer passing over one mark.
var hoverCmd = &cobra.Command{
	Use:   "hover <chart>",
	Short: "Show the tooltip transitions for one mark.",
	Long: `Render a chart, then deliver enter, move and leave events to one mark
and print the tooltip after each event.

Examples:
  # Hover the first bar
  planchart hover bar

  # Hover a specific mark
  planchart hover bar --series Plan --period 2022 --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHover(rootCtx, cfg, core.NewProvider(cfg)); err != nil {
			contract.LogFatal("Cannot hover chart", err)
		}
	},
}
