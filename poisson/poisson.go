package poisson

import (
	"fmt"

	"github.com/katalvlaran/stochastic/prob"
	"github.com/katalvlaran/stochastic/randsrc"
)

const methodProcess = "Process"

// Event is one unit interval of a Poisson trajectory.
type Event struct {
	// Time is the 1-based interval index.
	Time int
	// Occurred reports whether at least one event fell in this interval.
	Occurred bool
	// Count is the raw number of events in this interval.
	Count int
	// Cumulative is the running total of events through this interval.
	Cumulative int
}

// Option customizes one generation call.
type Option func(*config)

type config struct {
	src *randsrc.Source // nil means "seed from entropy"
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
		panic("poisson: WithSource(nil)")
	}
	return func(c *config) {
		c.src = s
	}
}

// Process generates a Poisson arrival trajectory over totalTime unit
// intervals at rate λ events per interval. The result has exactly
// totalTime entries with Time running 1..totalTime. Validation happens
// strictly before any draw.
func Process(totalTime int, rate float64, opts ...Option) ([]Event, error) {
	if err := prob.ValidateIntervals(totalTime); err != nil {
		return nil, fmt.Errorf("%s: totalTime=%d: %w", methodProcess, totalTime, err)
	}
	if err := prob.ValidateScale(rate); err != nil {
		return nil, fmt.Errorf("%s: rate=%g: %w", methodProcess, rate, err)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	src := cfg.src
	if src == nil {
		src = randsrc.NewEntropy()
	}

	// One batch of per-interval counts, then a single cumulative pass.
	counts := src.Poisson(totalTime, rate)
	traj := make([]Event, totalTime)
	total := 0
	for t := 0; t < totalTime; t++ {
		total += counts[t]
		traj[t] = Event{
			Time:       t + 1,
			Occurred:   counts[t] > 0,
			Count:      counts[t],
			Cumulative: total,
		}
	}

	return traj, nil
}
