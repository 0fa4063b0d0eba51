package schema

// Custom string types for type safety.
type (
	// ChartKind names one of the chart renderers.
	ChartKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// Shape is the glyph drawn for a series on point-style charts.
	Shape string

	// GanttLayout selects how Gantt rows place their series.
	GanttLayout string

	// MarkKind is the visual primitive a mark was drawn as.
	MarkKind string
)

// All chart kinds supported.
const (
	BarChart         ChartKind = "bar" // default
	LineChart        ChartKind = "line"
	MilestoneChart   ChartKind = "milestone"
	GanttChart       ChartKind = "gantt"
	BarLineChart     ChartKind = "barline"
	MarketShareChart ChartKind = "marketshare"
)

// All output modes supported.
const (
	SVGOut     OutputMode = "svg" // default
	HTMLOut    OutputMode = "html"
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text"
	ParquetOut OutputMode = "parquet"
)

// All glyph shapes supported.
const (
	CircleShape  Shape = "circle"
	SquareShape  Shape = "square"
	DiamondShape Shape = "diamond"
)

// All Gantt layouts supported.
const (
	OverlayLayout   GanttLayout = "overlay" // default
	SubdivideLayout GanttLayout = "subdivide"
)

// All mark kinds produced by renderers.
const (
	BarMark     MarkKind = "bar"
	HBarMark    MarkKind = "hbar"
	PointMark   MarkKind = "point"
	SegmentMark MarkKind = "segment"
)

// AllChartKinds lists the chart kinds in catalogue order.
var AllChartKinds = []ChartKind{BarChart, LineChart, MilestoneChart, GanttChart, BarLineChart, MarketShareChart}

// ValidChartKinds lists all valid chart kinds.
var ValidChartKinds = map[ChartKind]struct{}{
	BarChart:         {},
	LineChart:        {},
	MilestoneChart:   {},
	GanttChart:       {},
	BarLineChart:     {},
	MarketShareChart: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	SVGOut:     {},
	HTMLOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	TextOut:    {},
	ParquetOut: {},
}

// ValidShapes lists all valid glyph shapes.
var ValidShapes = map[Shape]struct{}{
	CircleShape:  {},
	SquareShape:  {},
	DiamondShape: {},
}

// ValidGanttLayouts lists all valid Gantt layouts.
var ValidGanttLayouts = map[GanttLayout]struct{}{
	OverlayLayout:   {},
	SubdivideLayout: {},
}
