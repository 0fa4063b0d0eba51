package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalColor(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected *color.Color
	}{
		{name: "named blue", css: "blue", expected: BlueColor},
		{name: "named with spaces and case", css: " SteelBlue ", expected: BlueColor},
		{name: "long hex blue", css: "#0000FF", expected: BlueColor},
		{name: "short hex red", css: "#F00", expected: RedColor},
		{name: "dark green", css: "#008000", expected: GreenColor},
		{name: "mid gray", css: "#666", expected: GrayColor},
		{name: "near white", css: "#f4f4f4", expected: PlainColor},
		{name: "black", css: "#000", expected: PlainColor},
		{name: "orange hex", css: "#ffa500", expected: YellowColor},
		{name: "teal hex", css: "#00c0c0", expected: CyanColor},
		{name: "violet hex", css: "#c000c0", expected: MagentaColor},
		{name: "bad hex", css: "#12", expected: PlainColor},
		{name: "not hex", css: "#zzzzzz", expected: PlainColor},
		{name: "unknown name", css: "chartreuse", expected: PlainColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, TerminalColor(tt.css))
		})
	}
}

func TestColorizeSeries(t *testing.T) {
	assert.Equal(t, "Plan", ColorizeSeries("Plan", "blue", false))
	assert.Contains(t, ColorizeSeries("Plan", "blue", true), "Plan")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		expected  string
	}{
		{12, 1, "12"},
		{16.7, 1, "16.7"},
		{16.75, 1, "16.8"},
		{0.1234, 3, "0.123"},
		{20.1, 0, "20"},
		{-0.01, 1, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatValue(tt.value, tt.precision))
	}
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    map[string]string
		expectError bool
	}{
		{name: "empty", input: "", expected: map[string]string{}},
		{name: "single", input: "plan=blue", expected: map[string]string{"plan": "blue"}},
		{
			name:     "several with spaces",
			input:    " plan = #00f , actual=green,",
			expected: map[string]string{"plan": "#00f", "actual": "green"},
		},
		{name: "missing separator", input: "plan", expectError: true},
		{name: "missing color", input: "plan=", expectError: true},
		{name: "missing key", input: "=red", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePalette(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "chart.svg")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}
