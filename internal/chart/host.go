package chart

import (
	"github.com/huangsam/planchart/internal/dataset"
	"github.com/huangsam/planchart/internal/scene"
)

// Host mounts exactly one chart at a time on its surface. Each mount owns
// a tooltip that is released on unmount, so remounting never leaves stray
// tooltips behind.
type Host struct {
	surface *scene.Surface
	chart   Chart
	data    *dataset.Dataset
	tip     *Tooltip
}

// NewHost returns a host with an empty surface.
func NewHost() *Host {
	return &Host{surface: scene.NewSurface(0, 0)}
}

// Mount unmounts any current chart, acquires a fresh tooltip and renders c.
func (h *Host) Mount(c Chart, ds *dataset.Dataset) (*Result, error) {
	h.Unmount()
	tip, err := NewTooltip()
	if err != nil {
		return nil, err
	}
	h.chart, h.data, h.tip = c, ds, tip
	return Render(c, ds, h.surface, tip), nil
}

// Redraw renders the mounted chart again on the same surface.
func (h *Host) Redraw() (*Result, bool) {
	if h.chart == nil {
		return nil, false
	}
	return Render(h.chart, h.data, h.surface, h.tip), true
}

// Unmount releases the tooltip and clears the surface.
func (h *Host) Unmount() {
	if h.tip != nil {
		h.tip.Release()
		h.tip = nil
	}
	h.chart, h.data = nil, nil
	h.surface.Clear()
}

// Attached returns the number of live tooltips owned by the host.
func (h *Host) Attached() int {
	if h.tip == nil || h.tip.Released() {
		return 0
	}
	return 1
}

// Chart returns the mounted chart or nil.
func (h *Host) Chart() Chart { return h.chart }

// Surface returns the drawing surface.
func (h *Host) Surface() *scene.Surface { return h.surface }

// Tooltip returns the tooltip of the current mount or nil.
func (h *Host) Tooltip() *Tooltip { return h.tip }
