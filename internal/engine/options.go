package engine

// Option configures an Engine during creation.
type Option func(*options)

type options struct {
	maxLineLength int
	maxLines      int
}

// WithMaxLineLength sets a soft limit on the visible length of a line.
// Zero, the default, means no limit.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLineLength = n
		}
	}
}

// WithMaxLines caps the number of lines the document may hold.
// Zero, the default, means no limit.
func WithMaxLines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLines = n
		}
	}
}
