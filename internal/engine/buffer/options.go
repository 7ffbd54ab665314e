package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the buffer's tab width.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithExpandTabs controls whether the buffer inserts spaces for tabs.
func WithExpandTabs(expand bool) Option {
	return func(b *Buffer) {
		b.expandTabs = expand
	}
}

// WithPath records the file path backing the buffer.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}
