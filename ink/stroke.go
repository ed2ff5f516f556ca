package ink

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapRound draws a semicircle at each endpoint.
	LineCapRound LineCap = iota

	// LineCapButt ends the stroke flush at the endpoint.
	LineCapButt
)

// LineJoin specifies the shape of stroke joins.
type LineJoin int

const (
	// LineJoinRound draws an arc between adjoining segments.
	LineJoinRound LineJoin = iota

	// LineJoinBevel connects adjoining segments with a straight edge.
	LineJoinBevel
)

// StrokeStyle holds the fixed rendering parameters for freehand ink.
// The color is not set here directly: the surface resolves it from the
// host's color scheme every time the style is (re-)applied.
type StrokeStyle struct {
	// Color is the ink color. Resolved from the host color scheme.
	Color RGBA

	// Width is the line width in pixels. Default: 3.0
	Width float64

	// Cap is the shape of stroke endpoints. Default: LineCapRound
	Cap LineCap

	// Join is the shape of stroke joins. Default: LineJoinRound
	Join LineJoin
}

// DefaultStrokeStyle returns the stroke style used for handwriting
// capture: a 3-pixel round-capped, round-joined line.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: Black,
		Width: 3.0,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	}
}

// WithWidth returns a copy of the style with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithColor returns a copy of the style with the given color.
func (s StrokeStyle) WithColor(c RGBA) StrokeStyle {
	s.Color = c
	return s
}
