package demo

import "io"

type Option func(d *Demo)

// WithOutput sets where the transcript is written.
func WithOutput(w io.Writer) Option {
	return func(d *Demo) {
		d.out = w
	}
}

// WithValues sets the chain that is printed and sorted.
func WithValues(vs ...int) Option {
	return func(d *Demo) {
		d.values = vs
	}
}

// WithColor toggles coloured headings.
func WithColor(enabled bool) Option {
	return func(d *Demo) {
		d.color = enabled
	}
}

// WithContainers additionally walks through the stack, queue and deque.
func WithContainers(enabled bool) Option {
	return func(d *Demo) {
		d.containers = enabled
	}
}
