package ink

// Host is the surface's view of its containing environment. It
// supplies the three signals the surface consumes: container size
// changes, the surface's bounding-box origin in viewport coordinates,
// and the current light/dark presentation mode.
type Host interface {
	// ObserveResize registers fn to be called with the container's
	// content-box dimensions on every size change, including the first
	// layout pass. It returns a release function that stops the
	// observation; Surface.Close calls it exactly once.
	ObserveResize(fn func(width, height int)) (release func())

	// Origin returns the surface's bounding-box origin in viewport
	// coordinates. Pointer events are mapped into surface-local
	// coordinates by subtracting this origin.
	Origin() Point

	// ColorScheme reports the current presentation mode. Sampled at
	// every style (re-)application, never cached.
	ColorScheme() ColorScheme
}

// HostFuncs adapts plain functions to the Host interface. Nil fields
// fall back to a no-op observation, a zero origin, and SchemeLight.
type HostFuncs struct {
	ObserveResizeFunc func(fn func(width, height int)) (release func())
	OriginFunc        func() Point
	ColorSchemeFunc   func() ColorScheme
}

// ObserveResize implements Host.
func (h HostFuncs) ObserveResize(fn func(width, height int)) (release func()) {
	if h.ObserveResizeFunc == nil {
		return func() {}
	}
	return h.ObserveResizeFunc(fn)
}

// Origin implements Host.
func (h HostFuncs) Origin() Point {
	if h.OriginFunc == nil {
		return Point{}
	}
	return h.OriginFunc()
}

// ColorScheme implements Host.
func (h HostFuncs) ColorScheme() ColorScheme {
	if h.ColorSchemeFunc == nil {
		return SchemeLight
	}
	return h.ColorSchemeFunc()
}
