package ink

// PointerPhase is the unified contact phase for mouse and touch input.
// Every host input API is adapted to begin/move/end at the boundary;
// the surface itself only ever sees phases.
type PointerPhase int

const (
	// PhaseBegin starts a new stroke at the event position.
	PhaseBegin PointerPhase = iota

	// PhaseMove extends the current stroke. Ignored unless a stroke
	// is active.
	PhaseMove

	// PhaseEnd terminates the current stroke. A pointer leaving the
	// surface while down maps to PhaseEnd as well: no stroke continues
	// outside the surface bounds.
	PhaseEnd
)

// String returns the phase name.
func (p PointerPhase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PointerEvent is a single contact event in viewport coordinates.
// Pos is meaningless for PhaseEnd.
type PointerEvent struct {
	Phase PointerPhase
	Pos   Point
}

// MouseAdapter maps a mouse event stream onto the pointer phase model.
// The surface tracks drawing-active itself, so the adapter is
// stateless: it only translates event kinds.
type MouseAdapter struct {
	surface *Surface
}

// NewMouseAdapter returns an adapter feeding s.
func NewMouseAdapter(s *Surface) *MouseAdapter {
	return &MouseAdapter{surface: s}
}

// Down reports a button press at a viewport position.
func (m *MouseAdapter) Down(pos Point) {
	m.surface.Handle(PointerEvent{Phase: PhaseBegin, Pos: pos})
}

// Move reports cursor movement at a viewport position.
func (m *MouseAdapter) Move(pos Point) {
	m.surface.Handle(PointerEvent{Phase: PhaseMove, Pos: pos})
}

// Up reports a button release.
func (m *MouseAdapter) Up() {
	m.surface.Handle(PointerEvent{Phase: PhaseEnd})
}

// Leave reports the cursor leaving the surface. While a stroke is
// active this terminates it exactly as a release would.
func (m *MouseAdapter) Leave() {
	m.surface.Handle(PointerEvent{Phase: PhaseEnd})
}

// noTouch marks the adapter as having no active contact.
const noTouch = -1

// TouchAdapter maps a multi-touch event stream onto the single-contact
// pointer phase model. Only one contact is tracked at a time: the
// first touch wins, and later touches are dropped until it lifts.
type TouchAdapter struct {
	surface *Surface
	active  int64
}

// NewTouchAdapter returns an adapter feeding s.
func NewTouchAdapter(s *Surface) *TouchAdapter {
	return &TouchAdapter{surface: s, active: noTouch}
}

// Down reports a new touch contact with the host's touch identifier.
// Contacts arriving while another is active are ignored.
func (t *TouchAdapter) Down(id int64, pos Point) {
	if t.active != noTouch {
		return
	}
	t.active = id
	t.surface.Handle(PointerEvent{Phase: PhaseBegin, Pos: pos})
}

// Move reports movement of a touch contact. Movement of anything but
// the active contact is ignored.
func (t *TouchAdapter) Move(id int64, pos Point) {
	if id != t.active {
		return
	}
	t.surface.Handle(PointerEvent{Phase: PhaseMove, Pos: pos})
}

// Up reports a lifted touch contact.
func (t *TouchAdapter) Up(id int64) {
	if id != t.active {
		return
	}
	t.active = noTouch
	t.surface.Handle(PointerEvent{Phase: PhaseEnd})
}

// Cancel drops the active contact, terminating any stroke in
// progress. Hosts call this when the system takes over the touch
// sequence (for example a gesture or an app switch).
func (t *TouchAdapter) Cancel() {
	if t.active == noTouch {
		return
	}
	t.active = noTouch
	t.surface.Handle(PointerEvent{Phase: PhaseEnd})
}
