package ink

// Option configures a Surface during creation.
//
// Example:
//
//	// Default 3-pixel round stroke
//	surf := ink.New(host)
//
//	// Heavier ink for high-DPI capture
//	surf := ink.New(host, ink.WithStrokeWidth(5))
type Option func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	style StrokeStyle
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		style: DefaultStrokeStyle(),
	}
}

// WithStrokeWidth sets the stroke width in pixels.
func WithStrokeWidth(w float64) Option {
	return func(o *surfaceOptions) {
		o.style.Width = w
	}
}

// WithStrokeStyle replaces the whole stroke style. The color component
// is still overridden at every style application from the host's
// color scheme.
func WithStrokeStyle(style StrokeStyle) Option {
	return func(o *surfaceOptions) {
		o.style = style
	}
}
