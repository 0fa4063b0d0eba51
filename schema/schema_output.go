package schema

// EnrichedChartInfo adds presentation data to a ChartInfo.
type EnrichedChartInfo struct {
	Rank   int    `json:"rank"`
	Family string `json:"family"`
	ChartInfo
}

// GetFamily returns the mark family a chart kind belongs to.
func GetFamily(kind ChartKind) string {
	switch kind {
	case BarChart, GanttChart:
		return "Bars"
	case LineChart:
		return "Lines"
	case MilestoneChart:
		return "Points"
	case BarLineChart, MarketShareChart:
		return "Composite"
	default:
		return "Unknown"
	}
}

// EnrichCharts adds rank and family to a list of chart infos.
func EnrichCharts(charts []ChartInfo) []EnrichedChartInfo {
	output := make([]EnrichedChartInfo, len(charts))
	for i, c := range charts {
		output[i] = EnrichedChartInfo{
			Rank:      i + 1,
			Family:    GetFamily(c.Kind),
			ChartInfo: c,
		}
	}
	return output
}
