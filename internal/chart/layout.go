package chart

// Margin is the space between the surface edge and the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout is the fixed geometry of a chart surface.
type Layout struct {
	Width, Height float64
	Margin        Margin
	// Background fills the whole surface when set.
	Background string
	// Absolute draws in surface coordinates instead of translating the
	// plot group by the margins.
	Absolute bool
}

// PlotWidth is the width inside the margins.
func (l Layout) PlotWidth() float64 {
	return l.Width - l.Margin.Left - l.Margin.Right
}

// PlotHeight is the height inside the margins.
func (l Layout) PlotHeight() float64 {
	return l.Height - l.Margin.Top - l.Margin.Bottom
}

// Resize returns the layout with a new surface size. Zero keeps the
// current dimension; margins are unchanged.
func (l Layout) Resize(width, height float64) Layout {
	if width > 0 {
		l.Width = width
	}
	if height > 0 {
		l.Height = height
	}
	return l
}
