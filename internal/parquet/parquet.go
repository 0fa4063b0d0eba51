// Package parquet provides data structures and functions for exporting rendered
// chart marks to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/schema"
	"github.com/parquet-go/parquet-go"
)

// MarkRow is one drawn mark of a rendered chart.
type MarkRow struct {
	// RenderedAt is when the chart was rendered (stored as TIMESTAMP with nanosecond precision)
	RenderedAt time.Time `parquet:"rendered_at,snappy"`

	// ChartKind is the chart the mark belongs to
	ChartKind string `parquet:"chart_kind,snappy"`

	// MarkID is the hover binding of the mark (nullable, absent values and line segments have none)
	MarkID *string `parquet:"mark_id,optional,snappy"`

	// MarkKind is the visual primitive (bar, hbar, point, segment)
	MarkKind string `parquet:"mark_kind,snappy"`

	// SeriesKey is the dataset key of the series
	SeriesKey string `parquet:"series_key,snappy"`

	// SeriesLabel is the display name of the series
	SeriesLabel string `parquet:"series_label,snappy"`

	// Period is the category the mark was drawn for
	Period string `parquet:"period,snappy"`

	// Value is the data value (nullable, absent values are stored as null)
	Value *float64 `parquet:"value,optional,snappy"`

	X      float64 `parquet:"x,snappy"`
	Y      float64 `parquet:"y,snappy"`
	Width  float64 `parquet:"width,snappy"`
	Height float64 `parquet:"height,snappy"`
	X2     float64 `parquet:"x2,snappy"`
	Y2     float64 `parquet:"y2,snappy"`

	// Color is the CSS fill or stroke color
	Color string `parquet:"color,snappy"`
}

// ChartRow is one entry of the chart catalogue.
type ChartRow struct {
	Rank        int32   `parquet:"rank,snappy"`
	ChartKind   string  `parquet:"chart_kind,snappy"`
	Family      string  `parquet:"family,snappy"`
	Title       *string `parquet:"title,optional,snappy"`
	Description string  `parquet:"description,snappy"`
	Width       float64 `parquet:"width,snappy"`
	Height      float64 `parquet:"height,snappy"`
	SeriesCount int32   `parquet:"series_count,snappy"`
}

// MarkRows flattens a render result into rows.
func MarkRows(res *chart.Result, renderedAt time.Time) []MarkRow {
	rows := make([]MarkRow, 0, len(res.Marks))
	for _, m := range res.Marks {
		row := MarkRow{
			RenderedAt:  renderedAt,
			ChartKind:   string(res.Kind),
			MarkKind:    string(m.Kind),
			SeriesKey:   m.Series,
			SeriesLabel: m.Label,
			Period:      m.Period,
			X:           m.X,
			Y:           m.Y,
			Width:       m.Width,
			Height:      m.Height,
			X2:          m.X2,
			Y2:          m.Y2,
			Color:       m.Color,
		}
		if m.ID != "" {
			id := m.ID
			row.MarkID = &id
		}
		if m.Present {
			v := m.Value
			row.Value = &v
		}
		rows = append(rows, row)
	}
	return rows
}

// ChartRows converts catalogue entries into rows.
func ChartRows(charts []schema.EnrichedChartInfo) []ChartRow {
	rows := make([]ChartRow, len(charts))
	for i, c := range charts {
		rows[i] = ChartRow{
			Rank:        int32(c.Rank),
			ChartKind:   string(c.Kind),
			Family:      c.Family,
			Description: c.Description,
			Width:       c.Width,
			Height:      c.Height,
			SeriesCount: int32(len(c.Series)),
		}
		if c.Title != "" {
			title := c.Title
			rows[i].Title = &title
		}
	}
	return rows
}

// WriteMarksParquet writes a slice of MarkRow structs to a Parquet file.
func WriteMarksParquet(data []MarkRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteChartsParquet writes a slice of ChartRow structs to a Parquet file.
func WriteChartsParquet(data []ChartRow, outputPath string) error {
	return writeRows(data, outputPath)
}

func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
