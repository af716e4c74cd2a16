package accuracy

// Option configures a Run.
type Option func(*options)

type options struct {
	samples int
	seed    string
	gap     float64
	span    float64
	workers int
}

func defaultOptions() options {
	return options{
		samples: 1000,
		seed:    "polyroot",
		gap:     0.5,
		span:    8,
		workers: 0, // GOMAXPROCS
	}
}

// WithSamples sets the number of random polynomials per degree.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithSeed sets the key of the deterministic sample stream.
// Equal seeds give equal reports.
func WithSeed(seed string) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithGap sets the minimum distance between the generated roots.
func WithGap(gap float64) Option {
	return func(o *options) {
		o.gap = gap
	}
}

// WithRange draws roots from [-span, span).
func WithRange(span float64) Option {
	return func(o *options) {
		o.span = span
	}
}

// WithWorkers sets the number of worker goroutines; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
