package chart

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/felixgeelhaar/statekit"

	"github.com/huangsam/planchart/internal/scene"
)

// Tooltip states.
const (
	StateHidden  statekit.StateID = "hidden"
	StateVisible statekit.StateID = "visible"
)

// Tooltip events.
const (
	EventEnter = "ENTER"
	EventMove  = "MOVE"
	EventLeave = "LEAVE"
)

// Pointer offset of the floating label.
const (
	TipOffsetX = 10
	TipOffsetY = -20
)

// TooltipCSS is the inline style of the floating label element.
const TooltipCSS = "position:absolute;background:#fff;border:1px solid #ccc;" +
	"padding:5px;border-radius:4px;font-size:12px;display:none"

// TipState is the observable state of the floating label.
type TipState struct {
	Visible bool    `json:"visible"`
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// tipContext is the statekit machine context.
type tipContext struct {
	TipState
}

// hoverPayload travels with ENTER and MOVE events.
type hoverPayload struct {
	Text string
	X, Y float64
}

type binding struct {
	series string
	value  float64
}

// Tooltip is the single floating label of one mounted chart. It is created
// on mount and released on unmount; marks register through Bind.
type Tooltip struct {
	mu       sync.Mutex
	interp   *statekit.Interpreter[*tipContext]
	ctx      *tipContext
	bindings map[string]binding
	next     int
	released bool
}

func newTipMachine() (*statekit.MachineConfig[*tipContext], error) {
	return statekit.NewMachine[*tipContext]("tooltip").
		WithInitial(StateHidden).
		WithContext(&tipContext{}).
		WithAction("show", showTip).
		WithAction("reposition", repositionTip).
		WithAction("hide", hideTip).
		State(StateHidden).
		OnEntry("hide").
		On(EventEnter).Target(StateVisible).Do("show").
		Done().
		State(StateVisible).
		On(EventEnter).Target(StateVisible).Do("show").
		On(EventMove).Target(StateVisible).Do("reposition").
		On(EventLeave).Target(StateHidden).Do("hide").
		Done().
		Build()
}

func showTip(ctx **tipContext, ev statekit.Event) {
	p, ok := ev.Payload.(hoverPayload)
	if !ok || ctx == nil || *ctx == nil {
		return
	}
	(*ctx).Visible = true
	(*ctx).Text = p.Text
	(*ctx).X, (*ctx).Y = p.X, p.Y
}

func repositionTip(ctx **tipContext, ev statekit.Event) {
	p, ok := ev.Payload.(hoverPayload)
	if !ok || ctx == nil || *ctx == nil {
		return
	}
	(*ctx).X, (*ctx).Y = p.X, p.Y
}

func hideTip(ctx **tipContext, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).Visible = false
}

// NewTooltip creates a hidden tooltip with its own state machine.
func NewTooltip() (*Tooltip, error) {
	machine, err := newTipMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build tooltip machine: %w", err)
	}
	c := &tipContext{}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(cur **tipContext) {
		*cur = c
	})
	interp.Start()
	return &Tooltip{
		interp:   interp,
		ctx:      c,
		bindings: make(map[string]binding),
	}, nil
}

// TipText is the label shown for a hovered mark.
func TipText(series string, value float64) string {
	return series + ": " + strconv.FormatFloat(value, 'f', -1, 64)
}

// Bind registers el as hoverable and returns its mark id. The element
// carries the id, series and value as data attributes.
func (t *Tooltip) Bind(el *scene.Element, series string, value float64) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := "m" + strconv.Itoa(t.next)
	t.next++
	if !t.released {
		t.bindings[id] = binding{series: series, value: value}
	}
	el.AddClass("hoverable").
		Set("data-mark", id).
		Set("data-series", series).
		Set("data-value", strconv.FormatFloat(value, 'f', -1, 64))
	return id
}

// Bound returns the number of registered marks.
func (t *Tooltip) Bound() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bindings)
}

// Enter shows the label for mark id at the pointer position. Unknown ids
// and released tooltips are ignored.
func (t *Tooltip) Enter(id string, x, y float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return false
	}
	b, ok := t.bindings[id]
	if !ok {
		return false
	}
	t.interp.Send(statekit.Event{
		Type:    EventEnter,
		Payload: hoverPayload{Text: TipText(b.series, b.value), X: x + TipOffsetX, Y: y + TipOffsetY},
	})
	return true
}

// Move repositions a visible label.
func (t *Tooltip) Move(x, y float64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released || !t.interp.Matches(StateVisible) {
		return false
	}
	t.interp.Send(statekit.Event{
		Type:    EventMove,
		Payload: hoverPayload{X: x + TipOffsetX, Y: y + TipOffsetY},
	})
	return true
}

// Leave hides the label.
func (t *Tooltip) Leave() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released || !t.interp.Matches(StateVisible) {
		return false
	}
	t.interp.Send(statekit.Event{Type: EventLeave})
	return true
}

// State returns the current machine state.
func (t *Tooltip) State() statekit.StateID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return StateHidden
	}
	return t.interp.State().Value
}

// Snapshot returns the label as currently displayed.
func (t *Tooltip) Snapshot() TipState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctx.TipState
}

// Reset hides the label and drops all bindings ahead of a redraw.
func (t *Tooltip) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return
	}
	if t.interp.Matches(StateVisible) {
		t.interp.Send(statekit.Event{Type: EventLeave})
	}
	t.bindings = make(map[string]binding)
	t.next = 0
}

// Release stops the machine. Further events are ignored.
func (t *Tooltip) Release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.released {
		return
	}
	t.released = true
	t.bindings = nil
	t.ctx.Visible = false
	t.interp.Stop()
}

// Released reports whether the tooltip was released.
func (t *Tooltip) Released() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released
}
