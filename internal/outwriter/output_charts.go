package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/internal/parquet"
	"github.com/huangsam/planchart/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintCharts displays the chart catalogue.
// This is a static display that does not render anything.
func PrintCharts(charts []schema.ChartInfo, cfg *contract.Config) error {
	enriched := schema.EnrichCharts(charts)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, enriched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartsCSV(w, enriched)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if err := parquet.WriteChartsParquet(parquet.ChartRows(enriched), cfg.OutputFile); err != nil {
			return err
		}
		logWrote("Wrote Parquet", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartsTable(w, enriched)
		}, "Wrote table")
	}
}

// writeChartsCSV writes one row per chart kind.
func writeChartsCSV(w io.Writer, charts []schema.EnrichedChartInfo) error {
	header := []string{"rank", "chart", "family", "title", "width", "height", "series", "description"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range charts {
			rec := []string{
				strconv.Itoa(c.Rank),
				string(c.Kind),
				c.Family,
				c.Title,
				strconv.FormatFloat(c.Width, 'f', -1, 64),
				strconv.FormatFloat(c.Height, 'f', -1, 64),
				strings.Join(c.Series, "|"),
				c.Description,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeChartsTable writes the catalogue as a table.
func writeChartsTable(w io.Writer, charts []schema.EnrichedChartInfo) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Chart", "Family", "Size", "Series", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	descWidth := getMaxDescriptionWidth()
	var data [][]string
	for _, c := range charts {
		data = append(data, []string{
			strconv.Itoa(c.Rank),
			string(c.Kind),
			c.Family,
			fmt.Sprintf("%gx%g", c.Width, c.Height),
			strconv.Itoa(len(c.Series)),
			truncateText(c.Description, descWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d chart kinds\n", len(charts))
	return err
}
