package ink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Surface is a live raster canvas for freehand handwriting capture.
//
// The surface observes its host container's size: on every observed
// change (including the first layout pass) it resizes the raster to
// the container's content box and re-applies the stroke style with a
// freshly sampled color scheme. Resizing a raster is destructive,
// so any existing ink is lost on a size change. That is observable,
// accepted behavior, not something the surface masks.
//
// All interaction goes through the pointer phase model, Clear and
// Snapshot. The pixmap is exclusively owned by the surface; no other
// component mutates it.
//
// A Surface is not safe for concurrent use. All calls must come from
// the host's event-dispatch goroutine.
type Surface struct {
	host Host

	// baseStyle keeps the configured width/cap/join; style is the
	// applied copy whose color is re-resolved per scheme.
	baseStyle StrokeStyle
	style     StrokeStyle

	pixmap *Pixmap
	width  int
	height int

	drawing bool
	hasInk  bool
	last    Point

	release func()
	closed  bool
}

// Ensure Surface implements io.Closer.
var _ io.Closer = (*Surface)(nil)

// New creates a surface hosted by host and registers its resize
// observation. The raster does not exist until the host delivers the
// first size notification; input arriving before that is ignored.
//
// Callers own the returned surface and must Close it to release the
// observation.
func New(host Host, opts ...Option) *Surface {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Surface{
		host:      host,
		baseStyle: options.style,
	}
	s.release = host.ObserveResize(s.resize)
	return s
}

// Close releases the resize observation. After Close the surface no
// longer reacts to container size changes. Close is idempotent.
// Implements io.Closer.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.release != nil {
		s.release()
	}
	return nil
}

// resize reacts to a container size notification: the raster is
// recreated at the new dimensions and the stroke style re-applied.
// Any committed ink is discarded, per the destructive-resize contract.
func (s *Surface) resize(width, height int) {
	if width <= 0 || height <= 0 {
		Logger().Warn("ignoring resize to empty content box",
			"width", width, "height", height)
		return
	}

	s.width = width
	s.height = height
	s.pixmap = NewPixmap(width, height)
	s.applyStyle()
	s.hasInk = false
	s.drawing = false

	Logger().Debug("surface resized", "width", width, "height", height)
}

// applyStyle re-derives the stroke style. The color scheme is sampled
// from the host on every application, never cached.
func (s *Surface) applyStyle() {
	s.style = s.baseStyle.WithColor(inkColor(s.host.ColorScheme()))
}

// Handle dispatches a pointer event to the matching stroke phase.
// Host input adapters (MouseAdapter, TouchAdapter) feed this.
func (s *Surface) Handle(e PointerEvent) {
	switch e.Phase {
	case PhaseBegin:
		s.Begin(e.Pos)
	case PhaseMove:
		s.Move(e.Pos)
	case PhaseEnd:
		s.End()
	}
}

// Begin starts a new stroke at a viewport position. The position is
// mapped into surface-local coordinates by subtracting the host's
// bounding-box origin. Ink-present turns true immediately; marking it
// again on a later stroke is a no-op.
//
// Begin before the first layout pass (no raster yet) is ignored.
func (s *Surface) Begin(viewport Point) {
	if s.pixmap == nil {
		Logger().Warn("pointer begin ignored: surface has no raster yet")
		return
	}

	local := viewport.Sub(s.host.Origin())
	stampCap(s.pixmap, local, s.style)
	s.last = local
	s.drawing = true
	s.hasInk = true

	Logger().Debug("stroke begin", "x", local.X, "y", local.Y)
}

// Move extends the current stroke to a viewport position, rendering
// the new segment immediately. Move without an active stroke is
// ignored.
func (s *Surface) Move(viewport Point) {
	if !s.drawing || s.pixmap == nil {
		return
	}

	local := viewport.Sub(s.host.Origin())
	stampSegment(s.pixmap, s.last, local, s.style)
	s.last = local
}

// End terminates the current stroke. A pointer leaving the surface
// while down must be delivered as End too; no stroke continues
// outside the surface bounds. End without an active stroke is a no-op.
func (s *Surface) End() {
	if !s.drawing {
		return
	}
	s.drawing = false
	Logger().Debug("stroke end")
}

// Clear erases the raster to fully transparent and resets ink-present.
// Clearing an empty surface is a no-op in effect.
func (s *Surface) Clear() {
	if s.pixmap != nil {
		s.pixmap.Clear(Transparent)
	}
	s.hasInk = false
}

// HasInk reports whether at least one stroke has been committed since
// the last clear or resize. Hosts use it to gate both the placeholder
// hint and snapshot availability.
func (s *Surface) HasInk() bool {
	return s.hasInk
}

// Size returns the surface's current dimensions. Both are zero before
// the first layout pass.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Raster returns a read-only view of the live raster for display.
// It is nil before the first layout pass. Hosts must not retain the
// view across resizes: a size change replaces the raster.
func (s *Surface) Raster() image.Image {
	if s.pixmap == nil {
		return nil
	}
	return s.pixmap
}

// Snapshot exports the current surface content as a PNG composited
// over an opaque white background, at the surface's exact dimensions.
//
// When no ink is present Snapshot returns (nil, nil): an empty export
// is a normal outcome, not an error, and callers should present
// "nothing to solve" instead of invoking recognition on a blank image.
//
// Snapshot never mutates the raster or the drawing state. Every call
// re-composites from the live raster; it is safe to call repeatedly,
// during or after drawing. The white fill is mandatory: downstream
// recognition expects a light background, and the live raster's
// transparency must not leak into the export.
func (s *Surface) Snapshot() ([]byte, error) {
	if !s.hasInk || s.pixmap == nil {
		return nil, nil
	}

	bounds := image.Rect(0, 0, s.width, s.height)
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, bounds, s.pixmap.ToImage(), image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
