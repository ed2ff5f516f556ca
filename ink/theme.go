package ink

// ColorScheme is the host's presentation mode. The surface samples it
// from the host at every style (re-)application, never caching it, so
// a scheme change takes effect at the next resize.
type ColorScheme int

const (
	// SchemeLight selects dark ink on a light presentation.
	SchemeLight ColorScheme = iota

	// SchemeDark selects light ink on a dark presentation.
	SchemeDark
)

// String returns the scheme name.
func (s ColorScheme) String() string {
	switch s {
	case SchemeDark:
		return "dark"
	default:
		return "light"
	}
}

// inkColor resolves the stroke color for a scheme.
func inkColor(s ColorScheme) RGBA {
	if s == SchemeDark {
		return White
	}
	return Black
}
