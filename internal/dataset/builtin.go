package dataset

import (
	"context"
	"fmt"
	"sort"

	"github.com/huangsam/planchart/schema"
)

// Series keys shared by the plan charts.
const (
	PlanKey      = "plan"
	RevisedKey   = "revised"
	ActualKey    = "actual"
	YearlyKey    = "yearly"
	ShareKey     = "share"
	CurrentKey   = "current"
	PreviousKey  = "previous"
	ReferenceKey = "reference"
)

// Record groups used by the composite charts.
const (
	YearGroup       = "year"
	MonthGroup      = "month"
	HistoricalGroup = "historical"
	YTDGroup        = "ytd"
)

// planSeries is the Plan / Revised Plan / Last Year Actuals triple.
func planSeries() []Series {
	return []Series{
		{Key: PlanKey, Label: "Plan", Color: "#0000FF", Shape: schema.CircleShape},
		{Key: RevisedKey, Label: "Revised Plan", Color: "#FF0000", Shape: schema.SquareShape},
		{Key: ActualKey, Label: "Last Year Actuals", Color: "#008000", Shape: schema.DiamondShape},
	}
}

// row is a compact literal for a plan record.
type row struct {
	period                string
	plan, revised, actual Value
}

func planRecords(rows []row) []Record {
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = Record{
			Period: r.period,
			Values: map[string]Value{
				PlanKey:    r.plan,
				RevisedKey: r.revised,
				ActualKey:  r.actual,
			},
		}
	}
	return out
}

var builtins = map[schema.ChartKind]func() *Dataset{
	schema.BarChart: func() *Dataset {
		return &Dataset{
			Name:   string(schema.BarChart),
			Title:  "Bar Graph Representation of Plans and Actuals",
			Series: planSeries(),
			Records: planRecords([]row{
				{"2021", Some(20), Some(19), Some(6)},
				{"2022", Some(19), Some(17), None},
				{"2023", Some(18), Some(18), None},
				{"Apr", Some(8), Some(5), None},
				{"May", Some(12), Some(11), Some(11)},
				{"Jun", Some(9), Some(6), Some(9)},
				{"Jul", Some(13), Some(12), Some(13)},
				{"Aug", Some(15), Some(13), Some(9)},
				{"Sep", Some(12), Some(11), Some(11)},
				{"Oct", Some(7), Some(6), Some(7)},
				{"Nov", Some(4), Some(3), Some(4)},
				{"Dec", Some(5), Some(5), Some(3)},
				{"Jan", Some(7), Some(7), Some(5)},
				{"Feb", Some(10), Some(7), Some(8)},
				{"Mar", Some(9), Some(5), Some(6)},
			}),
			Lo: 0, Hi: 20.1,
		}
	},
	schema.LineChart: func() *Dataset {
		return &Dataset{
			Name:   string(schema.LineChart),
			Title:  "Line Graph Representation of Plans and Actuals",
			Series: planSeries(),
			Records: planRecords([]row{
				{"2021", Some(20), Some(19), Some(6)},
				{"2022", Some(19), Some(17), None},
				{"2023", Some(18), Some(18), None},
				{"Apr", Some(8), Some(5), None},
				{"May", Some(12), Some(11), None},
				{"Jun", Some(9), Some(6), Some(9)},
				{"Jul", Some(13), Some(12), Some(13)},
				{"Aug", Some(15), Some(13), Some(9)},
				{"Sep", Some(12), Some(11), Some(11)},
				{"Oct", Some(7), Some(6), Some(4)},
				{"Nov", Some(4), Some(3), Some(3)},
				{"Dec", Some(5), Some(5), Some(5)},
				{"Jan", Some(10), Some(7), Some(8)},
				{"Feb", Some(9), Some(5), Some(6)},
				{"Mar", Some(9), Some(5), Some(6)},
			}),
			Lo: 0, Hi: 22,
		}
	},
	schema.MilestoneChart: func() *Dataset {
		return &Dataset{
			Name:   string(schema.MilestoneChart),
			Title:  "Milestone Chart",
			Series: planSeries(),
			Records: planRecords([]row{
				{"2021", Some(20), Some(19), Some(6)},
				{"2022", Some(19), Some(17), None},
				{"2023", Some(18), Some(18), None},
				{"Apr", Some(8), Some(5), None},
				{"May", Some(12), Some(6), Some(11)},
				{"Jun", Some(9), Some(6), Some(9)},
				{"Jul", Some(13), Some(12), Some(13)},
				{"Aug", Some(15), Some(13), Some(9)},
				{"Sep", Some(12), Some(6), Some(11)},
				{"Oct", Some(7), Some(3), Some(4)},
				{"Nov", Some(4), Some(3), Some(3)},
				{"Dec", Some(5), Some(5), Some(5)},
				{"Jan", Some(10), Some(7), Some(8)},
				{"Feb", Some(9), Some(7), Some(6)},
				{"Mar", Some(9), Some(5), Some(6)},
			}),
			Lo: 0, Hi: 20,
		}
	},
	schema.GanttChart: func() *Dataset {
		return &Dataset{
			Name:   string(schema.GanttChart),
			Series: planSeries(),
			Records: planRecords([]row{
				{"Mar", Some(9), Some(5), Some(6)},
				{"Feb", Some(10), Some(7), Some(8)},
				{"Jan", Some(7), Some(7), Some(5)},
				{"Dec", Some(5), Some(5), Some(3)},
				{"Nov", Some(4), Some(3), Some(4)},
				{"Oct", Some(7), Some(6), Some(7)},
				{"Sep", Some(12), Some(11), Some(11)},
				{"Aug", Some(15), Some(13), Some(9)},
				{"Jul", Some(13), Some(12), Some(13)},
				{"Jun", Some(9), Some(6), Some(9)},
				{"May", Some(12), Some(11), Some(11)},
				{"Apr", Some(8), Some(5), None},
				{"2023", Some(18), Some(18), None},
				{"2022", Some(19), Some(17), None},
				{"2021", Some(20), Some(19), Some(6)},
			}),
			Lo: 0, Hi: 20,
		}
	},
	schema.BarLineChart: func() *Dataset {
		ds := &Dataset{
			Name: string(schema.BarLineChart),
			Series: []Series{
				{Key: YearlyKey, Label: "Yearly Actual", Color: "steelblue"},
				{Key: PlanKey, Label: "Plan", Color: "blue"},
				{Key: ActualKey, Label: "Actual", Color: "green"},
			},
			Lo: 0, Hi: 20,
		}
		for _, y := range []struct {
			period string
			value  float64
		}{{"2021", 7}, {"2022", 15}, {"2023", 11}} {
			ds.Records = append(ds.Records, Record{
				Period: y.period,
				Group:  YearGroup,
				Values: map[string]Value{YearlyKey: Some(y.value)},
			})
		}
		for _, m := range []struct {
			period       string
			plan, actual float64
		}{
			{"Apr", 10, 12}, {"May", 12, 10}, {"Jun", 14, 8}, {"Jul", 16, 7},
			{"Aug", 18, 6}, {"Sep", 15, 5}, {"Oct", 12, 6}, {"Nov", 8, 7},
			{"Dec", 5, 9}, {"Jan", 9, 3}, {"Feb", 12, 5}, {"Mar", 14, 4},
		} {
			ds.Records = append(ds.Records, Record{
				Period: m.period,
				Group:  MonthGroup,
				Values: map[string]Value{PlanKey: Some(m.plan), ActualKey: Some(m.actual)},
			})
		}
		return ds
	},
	schema.MarketShareChart: func() *Dataset {
		ds := &Dataset{
			Name:  string(schema.MarketShareChart),
			Title: "Retail Market Share",
			Series: []Series{
				{Key: ShareKey, Label: "Share", Color: "black"},
				{Key: CurrentKey, Label: "Current Year", Color: "blue"},
				{Key: PreviousKey, Label: "Previous Year", Color: "red"},
				{Key: ReferenceKey, Label: "Reference", Color: "gray"},
			},
			Lo: 6.5, Hi: 31,
		}
		for _, h := range []struct {
			period string
			value  float64
		}{{"21-22", 15.2}, {"22-23", 16.0}, {"23-24", 16.6}} {
			ds.Records = append(ds.Records, Record{
				Period: h.period,
				Group:  HistoricalGroup,
				Values: map[string]Value{ShareKey: Some(h.value)},
			})
		}
		for _, m := range []struct {
			period   string
			cur, prv float64
			ref      float64
		}{
			{"Apr", 18.5, 17, 16.5}, {"May", 18, 16.5, 16.5}, {"Jun", 17.5, 16.8, 16.5},
			{"Jul", 17, 16.5, 16.5}, {"Aug", 15.5, 12, 15}, {"Sep", 16, 25, 18},
			{"Oct", 16.1, 16.5, 25}, {"Nov", 16.1, 16.5, 16.5}, {"Dec", 20.8, 16.5, 16.5},
			{"Jan", 20.5, 16.5, 16.7}, {"Feb", 20.6, 16.5, 16.7}, {"Mar", 20.6, 16.5, 16.7},
		} {
			ds.Records = append(ds.Records, Record{
				Period: m.period,
				Group:  MonthGroup,
				Values: map[string]Value{
					CurrentKey:   Some(m.cur),
					PreviousKey:  Some(m.prv),
					ReferenceKey: Some(m.ref),
				},
			})
		}
		for _, y := range []struct {
			period string
			value  float64
			color  string
		}{{"LY YTD", 16.7, "#666"}, {"PY YTD", 18.3, "#00F"}, {"TY YTD", 15.8, "#F00"}} {
			ds.Records = append(ds.Records, Record{
				Period: y.period,
				Group:  YTDGroup,
				Color:  y.color,
				Values: map[string]Value{ShareKey: Some(y.value)},
			})
		}
		return ds
	},
}

// Builtin serves the sample dataset of each chart kind. Every Load returns
// a fresh copy.
type Builtin struct{}

// NewBuiltin returns the built-in provider.
func NewBuiltin() *Builtin { return &Builtin{} }

// Load returns the sample dataset named after a chart kind.
func (Builtin) Load(ctx context.Context, name string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	build, ok := builtins[schema.ChartKind(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return build(), nil
}

// Names returns the built-in dataset names in sorted order.
func (Builtin) Names() []string {
	names := make([]string, 0, len(builtins))
	for k := range builtins {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}
