package schema

// HoverEvent is a pointer event delivered to a hoverable mark.
type HoverEvent string

// All hover events supported.
const (
	HoverEnter HoverEvent = "enter"
	HoverMove  HoverEvent = "move"
	HoverLeave HoverEvent = "leave"
)

// HoverStep is the tooltip state after one pointer event.
type HoverStep struct {
	Event   HoverEvent `json:"event"`
	Handled bool       `json:"handled"`
	State   string     `json:"state"`
	Visible bool       `json:"visible"`
	Text    string     `json:"text"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
}

// HoverResult is a simulated hover over one mark of a chart.
type HoverResult struct {
	Chart  ChartKind   `json:"chart"`
	Series string      `json:"series"`
	Period string      `json:"period"`
	MarkID string      `json:"mark_id"`
	Value  float64     `json:"value"`
	Steps  []HoverStep `json:"steps"`
}
