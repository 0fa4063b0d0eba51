package contract

import (
	"fmt"
	"maps"
	"strings"

	"github.com/huangsam/planchart/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 1
	MaxPrecision     = 3
	MaxDimension     = 4096
)

// Config holds the runtime configuration for rendering.
// This struct remains the "final, validated" config.
type Config struct {
	Chart       schema.ChartKind
	DatasetPath string // Empty means the built-in dataset of the chart
	Output      schema.OutputMode
	OutputFile  string
	Width       float64 // 0 keeps the chart default
	Height      float64 // 0 keeps the chart default
	Precision   int
	GanttLayout schema.GanttLayout
	Title       string

	// Series and Period select the mark for the hover command
	Series string
	Period string

	// Palette is a mapping of [SeriesKey] = CSS color
	Palette map[string]string

	UseEmojis bool // Enable emojis in progress headers
	UseColors bool // Enable colored series labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ChartStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Dataset    string `mapstructure:"dataset"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Precision  int    `mapstructure:"precision"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from renderCmd.Flags() ---
	GanttLayout     string `mapstructure:"gantt-layout"`
	Title           string `mapstructure:"title"`
	PaletteOverride string `mapstructure:"palette-override"`

	// --- Fields from hoverCmd.Flags() ---
	Series string `mapstructure:"series"`
	Period string `mapstructure:"period"`

	// --- Series colors from config file ---
	Palette map[string]string `mapstructure:"palette"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Palette != nil {
		clone.Palette = maps.Clone(c.Palette)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processChart(cfg, input); err != nil {
		return err
	}
	if err := processDimensions(cfg, input); err != nil {
		return err
	}
	if err := processPalette(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.DatasetPath = strings.TrimSpace(input.Dataset)
	cfg.Title = input.Title
	cfg.Series = strings.TrimSpace(input.Series)
	cfg.Period = strings.TrimSpace(input.Period)

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.SVGOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be svg, html, json, csv, text, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	return nil
}

// processChart validates the chart kind and its chart specific options.
func processChart(cfg *Config, input *ConfigRawInput) error {
	cfg.Chart = schema.ChartKind(strings.ToLower(strings.TrimSpace(input.ChartStr)))
	if cfg.Chart != "" {
		if _, ok := schema.ValidChartKinds[cfg.Chart]; !ok {
			return fmt.Errorf("invalid chart '%s'. must be one of %s", input.ChartStr, chartNames())
		}
	}

	cfg.GanttLayout = schema.GanttLayout(strings.ToLower(strings.TrimSpace(input.GanttLayout)))
	if cfg.GanttLayout == "" {
		cfg.GanttLayout = schema.OverlayLayout
	}
	if _, ok := schema.ValidGanttLayouts[cfg.GanttLayout]; !ok {
		return fmt.Errorf("invalid gantt layout '%s'. must be overlay, subdivide", input.GanttLayout)
	}
	return nil
}

// processDimensions validates the surface size overrides.
func processDimensions(cfg *Config, input *ConfigRawInput) error {
	if input.Width < 0 || input.Width > MaxDimension {
		return fmt.Errorf("width must be between 0 and %d (received %d)", MaxDimension, input.Width)
	}
	if input.Height < 0 || input.Height > MaxDimension {
		return fmt.Errorf("height must be between 0 and %d (received %d)", MaxDimension, input.Height)
	}
	cfg.Width = float64(input.Width)
	cfg.Height = float64(input.Height)
	return nil
}

// processPalette merges the config file palette with the --palette flag.
// The flag takes precedence over config file settings.
func processPalette(cfg *Config, input *ConfigRawInput) error {
	palette := make(map[string]string)
	for key, value := range input.Palette {
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			return fmt.Errorf("invalid palette entry '%s: %s' in config file", key, value)
		}
		palette[key] = value
	}

	if input.PaletteOverride != "" {
		parsed, err := ParsePalette(input.PaletteOverride)
		if err != nil {
			return fmt.Errorf("invalid --palette-override format: %w", err)
		}
		maps.Copy(palette, parsed)
	}

	if len(palette) > 0 {
		cfg.Palette = palette
	} else {
		cfg.Palette = nil
	}
	return nil
}

func chartNames() string {
	names := make([]string, len(schema.AllChartKinds))
	for i, kind := range schema.AllChartKinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// RevalidateRender applies chart options supplied outside the command line,
// such as MCP tool arguments, and validates them like their flags.
func RevalidateRender(cfg *Config, chartStr, ganttLayout string, width, height int) error {
	input := &ConfigRawInput{
		ChartStr:    chartStr,
		GanttLayout: ganttLayout,
		Width:       width,
		Height:      height,
	}
	// Unset arguments keep the base configuration
	if input.GanttLayout == "" {
		input.GanttLayout = string(cfg.GanttLayout)
	}
	if input.Width == 0 {
		input.Width = int(cfg.Width)
	}
	if input.Height == 0 {
		input.Height = int(cfg.Height)
	}
	if err := processChart(cfg, input); err != nil {
		return err
	}
	if cfg.Chart == "" {
		return fmt.Errorf("chart is required. must be one of %s", chartNames())
	}
	return processDimensions(cfg, input)
}
