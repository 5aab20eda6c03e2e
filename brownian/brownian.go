package brownian

import (
	"fmt"

	"github.com/katalvlaran/stochastic/prob"
)

const methodMotion = "Motion"

// Dimensionality bounds for Gaussian-increment trajectories.
const (
	minDim = 1
	maxDim = 3
)

// Motion generates a Brownian trajectory of steps transitions in dim
// dimensions with per-axis standard deviation sigma.
//
// Element 0 is the initial position (origin unless WithInitial is given);
// element k is the cumulative sum of the first k increments offset by the
// initial position. The result always has steps+1 positions, each a fresh
// []float64 of length dim owned by the caller.
//
// Validation happens strictly before any draw. σ = 0 still consumes
// steps·dim draws so that downstream draws on a shared source stay
// seed-stable; the resulting trajectory is exactly constant.
func Motion(steps int, sigma float64, dim int, opts ...Option) ([][]float64, error) {
	// 1) Validate parameters early.
	if err := prob.ValidateSteps(steps); err != nil {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodMotion, steps, err)
	}
	if err := prob.ValidateScale(sigma); err != nil {
		return nil, fmt.Errorf("%s: sigma=%g: %w", methodMotion, sigma, err)
	}
	if dim < minDim || dim > maxDim {
		return nil, fmt.Errorf("%s: dim=%d not in [%d,%d]: %w",
			methodMotion, dim, minDim, maxDim, prob.ErrDimensionMismatch)
	}

	// 2) Resolve configuration and initial position.
	cfg := resolveConfig(opts...)
	initial := cfg.initial
	if initial == nil {
		initial = make([]float64, dim)
	}
	if len(initial) != dim {
		return nil, fmt.Errorf("%s: initial arity %d for dim=%d: %w",
			methodMotion, len(initial), dim, prob.ErrDimensionMismatch)
	}

	// 3) Seat the initial position; the zero-step walk performs no draws.
	traj := make([][]float64, steps+1)
	traj[0] = append([]float64(nil), initial...)
	if steps == 0 {
		return traj, nil
	}

	// 4) Draw all increments in one step-major batch, then accumulate.
	incr := cfg.source().Normal(steps*dim, sigma)
	cur := append([]float64(nil), initial...)
	for k := 0; k < steps; k++ {
		next := make([]float64, dim)
		base := k * dim
		for a := 0; a < dim; a++ {
			next[a] = cur[a] + incr[base+a]
		}
		traj[k+1] = next
		cur = next
	}

	return traj, nil
}
