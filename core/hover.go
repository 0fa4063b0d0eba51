package core

import (
	"fmt"

	"github.com/huangsam/planchart/internal/chart"
	"github.com/huangsam/planchart/schema"
)

// Pointer travel between the enter and move events.
const hoverNudge = 5

// selectMark picks the hoverable mark of a series label or key at a period.
// Empty selectors match anything, so no selectors picks the first mark.
func selectMark(res *chart.Result, series, period string) (chart.Mark, error) {
	var absent bool
	for _, m := range res.Marks {
		if series != "" && m.Series != series && m.Label != series {
			continue
		}
		if period != "" && m.Period != period {
			continue
		}
		if m.ID == "" {
			absent = absent || (!m.Present && m.Kind != schema.SegmentMark)
			continue
		}
		return m, nil
	}
	if absent {
		return chart.Mark{}, fmt.Errorf("series %q has no value at period %q", series, period)
	}
	return chart.Mark{}, fmt.Errorf("no hoverable mark for series %q at period %q in %s chart", series, period, res.Kind)
}

// simulateHover delivers enter, move and leave over the centre of m and
// records the tooltip after each event.
func simulateHover(tip *chart.Tooltip, m chart.Mark) []schema.HoverStep {
	x, y := m.X+m.Width/2, m.Y+m.Height/2
	steps := make([]schema.HoverStep, 0, 3)
	record := func(ev schema.HoverEvent, handled bool) {
		snap := tip.Snapshot()
		step := schema.HoverStep{
			Event:   ev,
			Handled: handled,
			State:   string(tip.State()),
			Visible: snap.Visible,
		}
		if snap.Visible {
			step.Text, step.X, step.Y = snap.Text, snap.X, snap.Y
		}
		steps = append(steps, step)
	}
	record(schema.HoverEnter, tip.Enter(m.ID, x, y))
	record(schema.HoverMove, tip.Move(x+hoverNudge, y+hoverNudge))
	record(schema.HoverLeave, tip.Leave())
	return steps
}
