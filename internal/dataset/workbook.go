package dataset

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/planchart/schema"
	"github.com/xuri/excelize/v2"
)

// Sheet names of a dataset workbook. Records live on the first sheet that
// is neither the series nor the chart sheet.
const (
	SeriesSheet = "Series"
	ChartSheet  = "Chart"
)

// Record columns that are not series keys.
var recordColumns = []string{"period", "group", "color"}

// DecodeWorkbook reads a dataset from an Excel workbook.
//
// The records sheet has a header row naming "period", optionally "group"
// and "color", then one column per series key; blank cells are absent
// values. The Series sheet (key, label, color, shape) declares the series
// bindings and falls back to the record header. The Chart sheet holds
// name, title, lo and hi as key/value rows; a missing bound is taken from
// the values, with zero always inside the domain.
func DecodeWorkbook(f *excelize.File) (*Dataset, error) {
	sheet := recordSheet(f.GetSheetList())
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no records sheet")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	header := normalizeHeader(rows[0])
	if !slices.Contains(header, "period") {
		return nil, fmt.Errorf("sheet %s has no period column", sheet)
	}
	ds := &Dataset{}
	for _, key := range header {
		if key != "" && !slices.Contains(recordColumns, key) {
			ds.Series = append(ds.Series, Series{Key: key})
		}
	}

	for i, row := range rows[1:] {
		rec, err := workbookRecord(header, row)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, i+2, err)
		}
		if rec.Period == "" && len(rec.Values) == 0 {
			continue
		}
		ds.Records = append(ds.Records, rec)
	}

	if slices.Contains(f.GetSheetList(), SeriesSheet) {
		if err := readSeriesSheet(f, ds); err != nil {
			return nil, err
		}
	}
	var hasLo, hasHi bool
	if slices.Contains(f.GetSheetList(), ChartSheet) {
		if hasLo, hasHi, err = readChartSheet(f, ds); err != nil {
			return nil, err
		}
	}
	lo, hi := valueDomain(ds)
	if !hasLo {
		ds.Lo = lo
	}
	if !hasHi {
		ds.Hi = hi
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func recordSheet(sheets []string) string {
	for _, s := range sheets {
		if s != SeriesSheet && s != ChartSheet {
			return s
		}
	}
	return ""
}

func normalizeHeader(row []string) []string {
	header := make([]string, len(row))
	for i, cell := range row {
		header[i] = strings.TrimSpace(cell)
		if slices.Contains(recordColumns, strings.ToLower(header[i])) {
			header[i] = strings.ToLower(header[i])
		}
	}
	return header
}

func workbookRecord(header, row []string) (Record, error) {
	rec := Record{Values: make(map[string]Value)}
	for i, key := range header {
		if key == "" {
			continue
		}
		var cell string
		if i < len(row) {
			cell = strings.TrimSpace(row[i])
		}
		switch key {
		case "period":
			rec.Period = cell
		case "group":
			rec.Group = cell
		case "color":
			rec.Color = cell
		default:
			if cell == "" {
				rec.Values[key] = None
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return Record{}, fmt.Errorf("value %q of %s is not a number", cell, key)
			}
			rec.Values[key] = Some(v)
		}
	}
	return rec, nil
}

// readSeriesSheet applies labels, colors and shapes by key. Keys missing
// from the records sheet are declared with no values.
func readSeriesSheet(f *excelize.File, ds *Dataset) error {
	rows, err := f.GetRows(SeriesSheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", SeriesSheet, err)
	}
	if len(rows) < 2 {
		return nil
	}
	cols := make(map[string]int)
	for i, cell := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	get := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var declared []Series
	for _, row := range rows[1:] {
		key := get(row, "key")
		if key == "" {
			continue
		}
		declared = append(declared, Series{
			Key:   key,
			Label: get(row, "label"),
			Color: get(row, "color"),
			Shape: schema.Shape(strings.ToLower(get(row, "shape"))),
		})
	}
	// Columns the Series sheet does not mention keep their header order at the end
	for _, s := range ds.Series {
		if !slices.ContainsFunc(declared, func(d Series) bool { return d.Key == s.Key }) {
			declared = append(declared, s)
		}
	}
	ds.Series = declared
	return nil
}

// readChartSheet reads the name, title and domain. It reports which
// domain bounds were given.
func readChartSheet(f *excelize.File, ds *Dataset) (hasLo, hasHi bool, err error) {
	rows, err := f.GetRows(ChartSheet)
	if err != nil {
		return false, false, fmt.Errorf("failed to read sheet %s: %w", ChartSheet, err)
	}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key, value := strings.ToLower(strings.TrimSpace(row[0])), strings.TrimSpace(row[1])
		switch key {
		case "name":
			ds.Name = value
		case "title":
			ds.Title = value
		case "lo", "hi":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false, false, fmt.Errorf("sheet %s: %s %q is not a number", ChartSheet, key, value)
			}
			if key == "lo" {
				ds.Lo, hasLo = v, true
			} else {
				ds.Hi, hasHi = v, true
			}
		}
	}
	return hasLo, hasHi, nil
}

// valueDomain spans the present finite values and always includes zero.
func valueDomain(ds *Dataset) (float64, float64) {
	lo, hi := 0.0, math.Inf(-1)
	for _, r := range ds.Records {
		for _, v := range r.Values {
			if !v.Valid || !finite(v.V) {
				continue
			}
			lo = math.Min(lo, v.V)
			hi = math.Max(hi, v.V)
		}
	}
	if math.IsInf(hi, -1) || hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
