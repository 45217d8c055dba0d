package unigrid

import "runtime"

// Option configures Build.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers sets the number of goroutines used by the parallel emit
// phase. Values < 1 fall back to the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// gatherOptions resolves option setters against defaults.
func gatherOptions(opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}

	return c
}
