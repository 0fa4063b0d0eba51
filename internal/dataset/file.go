package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// fileDataset is the on-disk layout. JSON documents parse as well since
// JSON is a subset of YAML.
type fileDataset struct {
	Name    string       `yaml:"name"`
	Title   string       `yaml:"title,omitempty"`
	Domain  []float64    `yaml:"domain"`
	Series  []Series     `yaml:"series"`
	Records []fileRecord `yaml:"records"`
}

type fileRecord struct {
	Period string              `yaml:"period"`
	Group  string              `yaml:"group,omitempty"`
	Color  string              `yaml:"color,omitempty"`
	Values map[string]*float64 `yaml:"values"`
}

// File loads a single dataset from a YAML, JSON or Excel (.xlsx) file.
type File struct {
	Path string
}

// NewFile returns a provider reading the file at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads and validates the file. The requested name is used when the
// document does not carry one.
func (f *File) Load(ctx context.Context, name string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ds *Dataset
	if strings.EqualFold(filepath.Ext(f.Path), ".xlsx") {
		wb, err := excelize.OpenFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		defer func() { _ = wb.Close() }()
		if ds, err = DecodeWorkbook(wb); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f.Path, err)
		}
	} else {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset file: %w", err)
		}
		if ds, err = Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f.Path, err)
		}
	}
	if ds.Name == "" {
		ds.Name = name
	}
	return ds, nil
}

// Decode parses a dataset document and validates it. A null or missing
// value marks the series absent for that period.
func Decode(r io.Reader) (*Dataset, error) {
	var raw fileDataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty dataset document")
		}
		return nil, fmt.Errorf("invalid dataset document: %w", err)
	}
	if len(raw.Domain) != 2 {
		return nil, fmt.Errorf("domain must have exactly two bounds, got %d", len(raw.Domain))
	}

	ds := &Dataset{
		Name:    raw.Name,
		Title:   raw.Title,
		Series:  raw.Series,
		Records: make([]Record, len(raw.Records)),
		Lo:      raw.Domain[0],
		Hi:      raw.Domain[1],
	}
	for i, rec := range raw.Records {
		vals := make(map[string]Value, len(rec.Values))
		for k, v := range rec.Values {
			if v == nil {
				vals[k] = None
				continue
			}
			vals[k] = Some(*v)
		}
		ds.Records[i] = Record{
			Period: rec.Period,
			Group:  rec.Group,
			Color:  rec.Color,
			Values: vals,
		}
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Encode writes the dataset in the document layout Decode reads.
func Encode(w io.Writer, ds *Dataset) error {
	raw := fileDataset{
		Name:    ds.Name,
		Title:   ds.Title,
		Domain:  []float64{ds.Lo, ds.Hi},
		Series:  ds.Series,
		Records: make([]fileRecord, len(ds.Records)),
	}
	for i, r := range ds.Records {
		vals := make(map[string]*float64, len(ds.Series))
		for _, s := range ds.Series {
			v, ok := r.Values[s.Key]
			if !ok {
				continue
			}
			if !v.Valid {
				vals[s.Key] = nil
				continue
			}
			f := v.V
			vals[s.Key] = &f
		}
		raw.Records[i] = fileRecord{Period: r.Period, Group: r.Group, Color: r.Color, Values: vals}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(raw); err != nil {
		return err
	}
	return enc.Close()
}
