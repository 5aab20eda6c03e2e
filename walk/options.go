package walk

import "github.com/katalvlaran/stochastic/randsrc"

// Option customizes one generation call by mutating a config instance
// before any validation or sampling begins.
type Option func(*config)

// config aggregates the knobs for one Walk call. Passed by value to the
// engine (immutable to callers).
type config struct {
	src     *randsrc.Source // nil means "seed from entropy"
	initial Point           // nil means "origin of the walk's arity"
}

// WithSeed freezes the draw stream to a deterministic seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = randsrc.New(seed)
	}
}

// WithSource attaches an explicit random source. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithSource(s *randsrc.Source) Option {
	if s == nil {
		panic("walk: WithSource(nil)")
	}
	return func(c *config) {
		c.src = s
	}
}

// WithInitial sets the starting position. Its arity must match the
// direction set's arity, checked at generation time.
func WithInitial(coords ...int) Option {
	return func(c *config) {
		c.initial = Point(coords)
	}
}

// resolveConfig applies options in order (last wins) over deterministic
// defaults. Complexity: O(len(opts)).
func resolveConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the configured stream, falling back to OS entropy when no
// seed/source was requested.
func (c config) source() *randsrc.Source {
	if c.src != nil {
		return c.src
	}

	return randsrc.NewEntropy()
}
