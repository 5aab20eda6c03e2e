package walk_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochastic/prob"
	"github.com/katalvlaran/stochastic/walk"
)

const seed = 42

// TestWalk_Validation covers every rejection class; no partial trajectory
// may be returned on failure.
func TestWalk_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		run     func() ([]walk.Point, error)
		wantErr error
	}{
		{"negative_steps", func() ([]walk.Point, error) {
			return walk.Walk(-1, walk.Directions1D, []float64{0.5, 0.5})
		}, prob.ErrInvalidStepCount},
		{"empty_directions", func() ([]walk.Point, error) {
			return walk.Walk(3, walk.DirectionSet{}, []float64{})
		}, prob.ErrDimensionMismatch},
		{"ragged_directions", func() ([]walk.Point, error) {
			return walk.Walk(3, walk.DirectionSet{{1}, {-1, 0}}, []float64{0.5, 0.5})
		}, prob.ErrDimensionMismatch},
		{"probs_count_mismatch", func() ([]walk.Point, error) {
			return walk.Walk(3, walk.Directions2D, []float64{0.5, 0.5})
		}, prob.ErrDimensionMismatch},
		{"probs_sum_off", func() ([]walk.Point, error) {
			return walk.Walk1D(3, 0.6, 0.6)
		}, prob.ErrInvalidDistribution},
		{"negative_probability", func() ([]walk.Point, error) {
			return walk.Walk1D(3, 1.2, -0.2)
		}, prob.ErrInvalidDistribution},
		{"initial_arity_mismatch", func() ([]walk.Point, error) {
			return walk.Walk2D(3, 0.25, 0.25, 0.25, 0.25, walk.WithInitial(1))
		}, prob.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			traj, err := tc.run()
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, traj, "no partial trajectory on failure")
		})
	}
}

// TestWalk_DeterministicForward verifies the concrete contract scenario:
// p_forward=1 must yield [0,1,2,3] for any seed.
func TestWalk_DeterministicForward(t *testing.T) {
	t.Parallel()

	for _, s := range []int64{1, 7, 42} {
		traj, err := walk.Walk1D(3, 1.0, 0.0, walk.WithSeed(s))
		require.NoError(t, err)
		assert.Equal(t, []walk.Point{{0}, {1}, {2}, {3}}, traj, "seed %d", s)
	}
}

// TestWalk_LengthAndCumulativeInvariant verifies N+1 points and that every
// consecutive difference is exactly one move from the direction set.
func TestWalk_LengthAndCumulativeInvariant(t *testing.T) {
	t.Parallel()

	const steps = 200
	traj, err := walk.Walk2D(steps, 0.3, 0.2, 0.3, 0.2, walk.WithSeed(seed), walk.WithInitial(10, 5))
	require.NoError(t, err)
	require.Len(t, traj, steps+1)
	assert.Equal(t, walk.Point{10, 5}, traj[0], "element 0 is the initial position")

	isUnitMove := func(dx, dy int) bool {
		for _, mv := range walk.Directions2D {
			if mv[0] == dx && mv[1] == dy {
				return true
			}
		}
		return false
	}
	for k := 0; k < steps; k++ {
		dx := traj[k+1][0] - traj[k][0]
		dy := traj[k+1][1] - traj[k][1]
		require.True(t, isUnitMove(dx, dy), "step %d: (%d,%d) is not a unit move", k, dx, dy)
	}
}

// TestWalk_SeedReproducibility verifies element-for-element equality of two
// identically configured calls.
func TestWalk_SeedReproducibility(t *testing.T) {
	t.Parallel()

	a, err := walk.Walk3D(100, 0.15, 0.25, 0.2, 0.2, 0.1, 0.1, walk.WithSeed(seed))
	require.NoError(t, err)
	b, err := walk.Walk3D(100, 0.15, 0.25, 0.2, 0.2, 0.1, 0.1, walk.WithSeed(seed))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestWalk_ZeroSteps verifies the degenerate single-point trajectory.
func TestWalk_ZeroSteps(t *testing.T) {
	t.Parallel()

	traj, err := walk.Walk1D(0, 0.5, 0.5, walk.WithInitial(7))
	require.NoError(t, err)
	assert.Equal(t, []walk.Point{{7}}, traj)
}

// TestWalk_ZeroProbabilityDirections verifies masked directions are legal
// and never drawn.
func TestWalk_ZeroProbabilityDirections(t *testing.T) {
	t.Parallel()

	traj, err := walk.Walk2D(50, 0.5, 0.5, 0.0, 0.0, walk.WithSeed(seed))
	require.NoError(t, err)
	for _, p := range traj {
		require.Equal(t, 0, p[1], "y never moves when ±y probabilities are zero")
	}
}

// TestWalk_ConcurrentSources verifies two goroutines with their own seeds
// reproduce their trajectories independently (no shared generator state).
func TestWalk_ConcurrentSources(t *testing.T) {
	t.Parallel()

	want1, err := walk.Walk1D(500, 0.6, 0.4, walk.WithSeed(1))
	require.NoError(t, err)
	want2, err := walk.Walk1D(500, 0.6, 0.4, walk.WithSeed(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			got, err := walk.Walk1D(500, 0.6, 0.4, walk.WithSeed(1))
			assert.NoError(t, err)
			assert.Equal(t, want1, got)
		}()
		go func() {
			defer wg.Done()
			got, err := walk.Walk1D(500, 0.6, 0.4, walk.WithSeed(2))
			assert.NoError(t, err)
			assert.Equal(t, want2, got)
		}()
	}
	wg.Wait()
}

// TestWithSource_NilPanics verifies the option constructor contract.
func TestWithSource_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { walk.WithSource(nil) })
}
