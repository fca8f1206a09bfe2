package nodes

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default dark style and input configuration
//	ctx := nodes.NewContext()
//
//	// Font-backed label measurement
//	ctx := nodes.NewContext(nodes.WithTextMeasurer(backend.NewFontMeasurer(face)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	style    Style
	io       IO
	measurer TextMeasurer
	editor   *Editor
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		style:    DefaultStyle(),
		io:       DefaultIO(),
		measurer: nil, // Will be set to a fixed-advance measurer if nil
		editor:   nil, // Will be created if nil
	}
}

// WithStyle replaces the default style.
func WithStyle(s Style) ContextOption {
	return func(o *contextOptions) {
		o.style = s
	}
}

// WithIO replaces the default input configuration.
func WithIO(io IO) ContextOption {
	return func(o *contextOptions) {
		o.io = io
	}
}

// WithTextMeasurer sets the measurer used by Label to size text.
// Hosts that render labels with a real font should pass a measurer for the
// same face, so that node layout matches what is drawn.
func WithTextMeasurer(m TextMeasurer) ContextOption {
	return func(o *contextOptions) {
		o.measurer = m
	}
}

// WithEditor makes the Context start on an existing editor instead of a
// fresh one.
func WithEditor(e *Editor) ContextOption {
	return func(o *contextOptions) {
		o.editor = e
	}
}
