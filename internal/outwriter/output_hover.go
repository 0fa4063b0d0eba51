package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/planchart/internal/contract"
	"github.com/huangsam/planchart/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHover displays the tooltip transitions of a simulated hover.
func PrintHover(res schema.HoverResult, cfg *contract.Config) error {
	_, fmtCoord := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, res)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHoverCSV(w, res, fmtCoord)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHoverTable(w, res, fmtCoord)
		}, "Wrote table")
	}
}

// writeHoverCSV writes one row per pointer event.
func writeHoverCSV(w io.Writer, res schema.HoverResult, fmtCoord func(float64) string) error {
	header := []string{"step", "event", "handled", "state", "visible", "text", "x", "y"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, s := range res.Steps {
			rec := []string{
				strconv.Itoa(i + 1),
				string(s.Event),
				strconv.FormatBool(s.Handled),
				s.State,
				strconv.FormatBool(s.Visible),
				s.Text,
				fmtCoord(s.X),
				fmtCoord(s.Y),
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeHoverTable writes the transitions as a table.
func writeHoverTable(w io.Writer, res schema.HoverResult, fmtCoord func(float64) string) error {
	if _, err := fmt.Fprintf(w, "Hover %s @ %s on %s chart (mark %s)\n", res.Series, res.Period, res.Chart, res.MarkID); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Step", "Event", "Handled", "State", "Label", "X", "Y"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range res.Steps {
		label, x, y := "-", "-", "-"
		if s.Visible {
			label, x, y = s.Text, fmtCoord(s.X), fmtCoord(s.Y)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(s.Event),
			strconv.FormatBool(s.Handled),
			s.State,
			label,
			x,
			y,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
