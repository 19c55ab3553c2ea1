package genarena

type options struct {
	capacity int
	logger   *Logger
	observer Observer
}

// Option configures an Arena at construction time.
type Option func(*options)

// WithCapacity reserves storage for n slots up front. Inserting up to n values
// then never reallocates. Reservation does not consume any versions.
//
// Values of n <= 0 reserve nothing.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithLogger enables structured logging of slot retirement, key overflow and
// storage growth. Arenas do not log by default.
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver registers an Observer for structural events.
//
// If nil is passed, no observer is registered.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}
