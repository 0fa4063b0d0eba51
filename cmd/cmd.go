// Package cmd defines the command-line interface for planchart.
package cmd

import (
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(hoverCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.SVGOut), "Output format: svg or html or json or csv or text or parquet")
	rootCmd.PersistentFlags().StringP("output-file", "o", "", "Optional path to write output to")
	rootCmd.PersistentFlags().StringP("dataset", "d", "", "Path to a YAML, JSON or XLSX dataset file (default: built-in sample)")
	rootCmd.PersistentFlags().Int("width", 0, "Surface width override in pixels (0 = chart default)")
	rootCmd.PersistentFlags().Int("height", 0, "Surface height override in pixels (0 = chart default)")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("gantt-layout", string(schema.OverlayLayout), "Gantt row layout: overlay or subdivide")
	rootCmd.PersistentFlags().String("title", "", "Replace the dataset title")
	rootCmd.PersistentFlags().String("palette-override", "", "Series colors (format: 'plan=#0000FF,actual=green')")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in progress headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of hoverCmd to Viper
	hoverCmd.Flags().String("series", "", "Series label or key of the hovered mark (default: first hoverable mark)")
	hoverCmd.Flags().String("period", "", "Period of the hovered mark")
	if err := viper.BindPFlags(hoverCmd.Flags()); err != nil {
		contract.LogFatal("Error binding hover flags", err)
	}
}
