package brownian

import "github.com/katalvlaran/stochastic/randsrc"

// Option customizes one generation call.
type Option func(*config)

// config aggregates the knobs for one Motion call.
type config struct {
	src     *randsrc.Source // nil means "seed from entropy"
	initial []float64       // nil means "origin"
}

// WithSeed freezes the draw stream to a deterministic seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = randsrc.New(seed)
	}
}

// WithSource attaches an explicit random source. Panics on nil.
func WithSource(s *randsrc.Source) Option {
	if s == nil {
		panic("brownian: WithSource(nil)")
	}
	return func(c *config) {
		c.src = s
	}
}

// WithInitial sets the starting position; its arity must match dim.
func WithInitial(coords ...float64) Option {
	return func(c *config) {
		c.initial = coords
	}
}

func resolveConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) source() *randsrc.Source {
	if c.src != nil {
		return c.src
	}

	return randsrc.NewEntropy()
}
