package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
		coord     string
	}{
		{name: "precision 1", precision: 1, value: 16.75, expected: "16.8", coord: "16.75"},
		{name: "precision 0", precision: 0, value: 20.1, expected: "20", coord: "20.1"},
		{name: "precision 3", precision: 3, value: 3.14159, expected: "3.142", coord: "3.142"},
		{name: "negative value", precision: 2, value: -42.567, expected: "-42.57", coord: "-42.567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtValue, fmtCoord := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtValue(tt.value))
			assert.Equal(t, tt.coord, fmtCoord(tt.value))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"chart": "bar", "marks": 45}))
	assert.Equal(t, "{\n  \"chart\": \"bar\",\n  \"marks\": 45\n}\n", buf.String())
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:     "marks",
			header:   []string{"series", "period", "value"},
			rows:     [][]string{{"plan", "May", "12"}, {"actual", "May", ""}},
			expected: "series,period,value\nplan,May,12\nactual,May,\n",
		},
		{
			name:     "empty rows",
			header:   []string{"series", "period"},
			expected: "series,period\n",
		},
		{
			name:     "values with commas",
			header:   []string{"chart", "description"},
			rows:     [][]string{{"bar", "Grouped bars per period, one bar per series"}},
			expected: "chart,description\nbar,\"Grouped bars per period, one bar per series\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		called := false
		err := writeWithFile("", func(io.Writer) error {
			called = true
			return nil
		}, "Test message")
		require.NoError(t, err)
		assert.True(t, called, "Writer function should have been called")
	})

	t.Run("file", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "chart.svg")
		err := writeWithFile(tmpFile, func(w io.Writer) error {
			_, err := io.WriteString(w, "<svg/>")
			return err
		}, "Wrote SVG")
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "<svg/>", string(content))
	})

	t.Run("writer error", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "chart.svg")
		err := writeWithFile(tmpFile, func(io.Writer) error {
			return assert.AnError
		}, "Wrote SVG")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/path/chart.svg", func(io.Writer) error {
			return nil
		}, "Wrote SVG")
		assert.Error(t, err)
	})
}

func TestWriteJSONToFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "legend.json")
	err := writeWithFile(tmpFile, func(w io.Writer) error {
		return writeJSON(w, []string{"Plan", "Revised Plan"})
	}, "Wrote JSON")
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	var legend []string
	require.NoError(t, json.Unmarshal(content, &legend))
	assert.Equal(t, []string{"Plan", "Revised Plan"}, legend)
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "Grouped...", truncateText("Grouped bars per period", 10))
	assert.Equal(t, "abcdef", truncateText("abcdef", 3))
	assert.Equal(t, "ab…d", truncateText("ab…d", 4))
	assert.True(t, strings.HasSuffix(truncateText(strings.Repeat("x", 100), maxTextWidth), "..."))
}

func TestGetMaxDescriptionWidth(t *testing.T) {
	width := getMaxDescriptionWidth()
	assert.GreaterOrEqual(t, width, minTextWidth)
	assert.LessOrEqual(t, width, maxTextWidth)
}
