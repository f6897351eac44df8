package xmpperr

// Option is an Error option function
type Option func(*Error)

// WithText sets the error's human-readable text.
func WithText(text string) Option { return func(e *Error) { e.Text = text } }
