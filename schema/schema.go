// Package schema has the chart kinds, output modes and catalogue models shared by all parts of planchart.
package schema

// ChartInfo describes one chart kind in the catalogue.
type ChartInfo struct {
	Kind        ChartKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Series      []string  `json:"series"`
}
