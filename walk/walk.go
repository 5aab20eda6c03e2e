package walk

import (
	"fmt"

	"github.com/katalvlaran/stochastic/prob"
)

// Method tags for error wrapping.
const (
	methodWalk   = "Walk"
	methodWalk1D = "Walk1D"
	methodWalk2D = "Walk2D"
	methodWalk3D = "Walk3D"
)

// Walk generates a lattice random-walk trajectory of steps transitions.
//
// It draws steps categorical indices into dirs (aligned with probs), maps
// each index to its unit move, and returns the cumulative positions offset
// by the initial position, prefixed with the initial position itself. The
// result always has steps+1 points; steps == 0 performs no draws and
// returns the single-point trajectory.
//
// Validation happens strictly before any draw; on rejection no partial
// trajectory is produced. Returned points are freshly allocated and owned
// by the caller.
func Walk(steps int, dirs DirectionSet, probs []float64, opts ...Option) ([]Point, error) {
	// 1) Validate parameters early (fail fast, zero side effects on invalid input).
	if err := prob.ValidateSteps(steps); err != nil {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodWalk, steps, err)
	}
	dim := dirs.arity()
	if dim < 0 {
		return nil, fmt.Errorf("%s: empty or ragged direction set: %w", methodWalk, prob.ErrDimensionMismatch)
	}
	if len(probs) != len(dirs) {
		return nil, fmt.Errorf("%s: %d probabilities for %d directions: %w",
			methodWalk, len(probs), len(dirs), prob.ErrDimensionMismatch)
	}
	if err := prob.ValidateDistribution(probs); err != nil {
		return nil, fmt.Errorf("%s: %w", methodWalk, err)
	}

	// 2) Resolve the configuration and the initial position.
	cfg := resolveConfig(opts...)
	initial := cfg.initial
	if initial == nil {
		initial = make(Point, dim) // origin
	}
	if len(initial) != dim {
		return nil, fmt.Errorf("%s: initial arity %d for %d-dimensional walk: %w",
			methodWalk, len(initial), dim, prob.ErrDimensionMismatch)
	}

	// 3) Allocate the trajectory and seat the initial position at index 0.
	traj := make([]Point, steps+1)
	traj[0] = append(Point(nil), initial...)
	if steps == 0 {
		return traj, nil
	}

	// 4) Draw all direction indices in one batch (reproducibility contract),
	//    then accumulate positions in a single deterministic pass.
	idx := cfg.source().Categorical(steps, probs)
	cur := append(Point(nil), initial...)
	for k, di := range idx {
		mv := dirs[di]
		next := make(Point, dim)
		for a := 0; a < dim; a++ {
			next[a] = cur[a] + mv[a]
		}
		traj[k+1] = next
		cur = next
	}

	return traj, nil
}

// Walk1D simulates a 1D walk with forward/backward probabilities over
// Directions1D. Initial position defaults to 0; pass WithInitial(x) to
// override.
func Walk1D(steps int, pForward, pBackward float64, opts ...Option) ([]Point, error) {
	traj, err := Walk(steps, Directions1D, []float64{pForward, pBackward}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWalk1D, err)
	}

	return traj, nil
}

// Walk2D simulates a 2D walk with right/left/up/down probabilities over
// Directions2D.
func Walk2D(steps int, pRight, pLeft, pUp, pDown float64, opts ...Option) ([]Point, error) {
	traj, err := Walk(steps, Directions2D, []float64{pRight, pLeft, pUp, pDown}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWalk2D, err)
	}

	return traj, nil
}

// Walk3D simulates a 3D walk with ±x/±y/±z probabilities over Directions3D.
func Walk3D(steps int, pPosX, pNegX, pPosY, pNegY, pPosZ, pNegZ float64, opts ...Option) ([]Point, error) {
	traj, err := Walk(steps, Directions3D,
		[]float64{pPosX, pNegX, pPosY, pNegY, pPosZ, pNegZ}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWalk3D, err)
	}

	return traj, nil
}
