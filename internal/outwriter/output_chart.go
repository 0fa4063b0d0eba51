package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/parquet"
	"github.com/huangsam/planchart/internal/scene"
	"github.com/huangsam/planchart/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintChart outputs a rendered chart, dispatching based on the output format configured.
func PrintChart(res *chart.Result, surface *scene.Surface, cfg *contract.Config, duration time.Duration) error {
	fmtValue, fmtCoord := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartHTML(w, res, surface)
		}, "Wrote HTML")
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, res)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartCSV(w, res, fmtValue, fmtCoord)
		}, "Wrote CSV")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartTable(w, res, cfg, fmtValue, fmtCoord, duration)
		}, "Wrote table")
	case schema.ParquetOut:
		return writeChartParquet(res, cfg)
	default:
		return writeWithFile(cfg.OutputFile, surface.Render, "Wrote SVG")
	}
}

// writeChartCSV writes one row per mark.
func writeChartCSV(w io.Writer, res *chart.Result, fmtValue, fmtCoord func(float64) string) error {
	header := []string{
		"id", "kind", "series", "label", "period", "value", "present",
		"x", "y", "width", "height", "x2", "y2", "color",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, m := range res.Marks {
			value := ""
			if m.Present {
				value = fmtValue(m.Value)
			}
			rec := []string{
				m.ID,
				string(m.Kind),
				m.Series,
				m.Label,
				m.Period,
				value,
				strconv.FormatBool(m.Present),
				fmtCoord(m.X),
				fmtCoord(m.Y),
				fmtCoord(m.Width),
				fmtCoord(m.Height),
				fmtCoord(m.X2),
				fmtCoord(m.Y2),
				m.Color,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeChartTable generates and writes the human-readable mark table.
func writeChartTable(w io.Writer, res *chart.Result, cfg *contract.Config, fmtValue, fmtCoord func(float64) string, duration time.Duration) error {
	colorize := shouldColorize(cfg, w)
	colors := make(map[string]string, len(res.Legend))
	for _, e := range res.Legend {
		colors[e.Label] = e.Color
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Series", "Period", "Kind", "Value", "X", "Y", "Width", "Height"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	hoverable := 0
	var data [][]string
	for i, m := range res.Marks {
		value := "-"
		if m.Present {
			value = fmtValue(m.Value)
		}
		if m.ID != "" {
			hoverable++
		}
		color := m.Color
		if c, ok := colors[m.Label]; ok {
			color = c
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.ColorizeSeries(m.Label, color, colorize),
			m.Period,
			string(m.Kind),
			value,
			fmtCoord(m.X),
			fmtCoord(m.Y),
			fmtCoord(m.Width),
			fmtCoord(m.Height),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	title := res.Title
	if title == "" {
		title = "untitled"
	}
	if _, err := fmt.Fprintf(w, "Showing %d marks for %s chart %q (%d series, %d hoverable)\n",
		len(res.Marks), res.Kind, title, len(res.Legend), hoverable); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Rendered %sx%s surface in %v\n", fmtCoord(res.Width), fmtCoord(res.Height), duration); err != nil {
		return err
	}
	return nil
}

// writeChartParquet writes the marks to the configured output file.
func writeChartParquet(res *chart.Result, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	rows := parquet.MarkRows(res, time.Now())
	if err := parquet.WriteMarksParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	logWrote("Wrote Parquet", cfg.OutputFile)
	return nil
}
