package stats

import (
	"errors"
	"fmt"
)

// Sentinel errors for stats operations.
var (
	// ErrEmptyTrajectory indicates there are no samples to summarize.
	ErrEmptyTrajectory = errors.New("stats: trajectory must have at least one sample")
	// ErrRaggedTrajectory indicates samples of differing arity.
	ErrRaggedTrajectory = errors.New("stats: all samples must share one arity")
)

// Summary is the derived, read-only description of one trajectory.
type Summary struct {
	// Final is the last state of the trajectory.
	Final []float64
	// Mean is the per-axis arithmetic mean over all samples.
	Mean []float64
	// Variance is the per-axis population variance (denominator = sample count).
	Variance []float64
}

// Summarize computes the Summary of a trajectory of d-dimensional samples.
// The input is read-only; every returned slice is freshly allocated.
// Complexity: O(n·d) time, O(d) memory.
func Summarize(traj [][]float64) (Summary, error) {
	n := len(traj)
	if n == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmptyTrajectory)
	}
	d := len(traj[0])

	mean := make([]float64, d)
	for i, sample := range traj {
		if len(sample) != d {
			return Summary{}, fmt.Errorf("Summarize: sample %d has arity %d, want %d: %w",
				i, len(sample), d, ErrRaggedTrajectory)
		}
		for a := 0; a < d; a++ {
			mean[a] += sample[a]
		}
	}
	invN := 1.0 / float64(n)
	for a := 0; a < d; a++ {
		mean[a] *= invN
	}

	// Second pass: population variance around the per-axis mean.
	variance := make([]float64, d)
	var dev float64
	for _, sample := range traj {
		for a := 0; a < d; a++ {
			dev = sample[a] - mean[a]
			variance[a] += dev * dev
		}
	}
	for a := 0; a < d; a++ {
		variance[a] *= invN
	}

	return Summary{
		Final:    append([]float64(nil), traj[n-1]...),
		Mean:     mean,
		Variance: variance,
	}, nil
}

// FromInts adapts an integer-valued trajectory (e.g. a lattice walk's
// []walk.Point) for Summarize. Complexity: O(n·d).
func FromInts[P ~[]int](traj []P) [][]float64 {
	out := make([][]float64, len(traj))
	for i, sample := range traj {
		row := make([]float64, len(sample))
		for a, v := range sample {
			row[a] = float64(v)
		}
		out[i] = row
	}

	return out
}
