// Package ink provides a freehand ink-capture surface for handwriting
// recognition pipelines.
//
// # Overview
//
// A Surface owns a raster pixmap that tracks its host container's size,
// captures pointer and touch input as freehand strokes, and produces a
// flattened, white-backed PNG snapshot on demand. It is the capture
// stage in front of an external recognition service: strokes are not
// retained as structured data, only their rasterized trace persists.
//
// # Quick Start
//
//	surf := ink.New(host)
//	defer surf.Close()
//
//	// Forward host input through the phase model.
//	surf.Handle(ink.PointerEvent{Phase: ink.PhaseBegin, Pos: ink.Pt(50, 50)})
//	surf.Handle(ink.PointerEvent{Phase: ink.PhaseMove, Pos: ink.Pt(80, 50)})
//	surf.Handle(ink.PointerEvent{Phase: ink.PhaseEnd})
//
//	// Export for recognition. A nil snapshot means nothing was drawn.
//	png, err := surf.Snapshot()
//
// # Coordinate System
//
// Events arrive in viewport coordinates and are mapped into
// surface-local coordinates by subtracting the host's bounding-box
// origin. Origin (0,0) is the top-left corner, X increases right,
// Y increases down.
//
// # Concurrency
//
// A Surface is single-goroutine: all state mutation happens
// synchronously in response to input events and resize notifications.
// It performs no I/O and holds no locks.
package ink
