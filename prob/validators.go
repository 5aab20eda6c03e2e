package prob

import (
	"fmt"
	"math"
)

// Tolerance is the absolute tolerance used when checking that a discrete
// distribution (or a stochastic-matrix row) sums to 1.
const Tolerance = 1e-8

// validatorErrorf wraps a sentinel with the given validator tag so every
// rejection carries a consistent "<Validator>: ..." prefix.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDistribution checks that probs is a well-formed categorical
// distribution: non-empty, every entry ≥ 0, and Σ probs within Tolerance
// of 1. Zero entries are legal as long as the remainder sums to 1.
// Complexity: O(len(probs)).
func ValidateDistribution(probs []float64) error {
	if len(probs) == 0 {
		return validatorErrorf("ValidateDistribution", ErrInvalidDistribution)
	}
	sum := 0.0
	for _, p := range probs {
		if p < 0 || math.IsNaN(p) {
			return validatorErrorf("ValidateDistribution", ErrInvalidDistribution)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > Tolerance {
		return validatorErrorf("ValidateDistribution", ErrInvalidDistribution)
	}

	return nil
}

// ValidateStochasticMatrix checks that m is a square n×n row-stochastic
// matrix: every row is a valid categorical distribution over n outcomes.
// Complexity: O(n²).
func ValidateStochasticMatrix(m [][]float64, n int) error {
	if len(m) != n {
		return validatorErrorf("ValidateStochasticMatrix", ErrDimensionMismatch)
	}
	for _, row := range m {
		if len(row) != n {
			return validatorErrorf("ValidateStochasticMatrix", ErrDimensionMismatch)
		}
		if err := ValidateDistribution(row); err != nil {
			return validatorErrorf("ValidateStochasticMatrix", ErrInvalidDistribution)
		}
	}

	return nil
}

// ValidateSteps guards a transition count that permits the degenerate
// zero-step trajectory: n < 0 is rejected, n == 0 is legal and yields a
// single-element trajectory downstream. Complexity: O(1).
func ValidateSteps(n int) error {
	if n < 0 {
		return validatorErrorf("ValidateSteps", ErrInvalidStepCount)
	}

	return nil
}

// ValidateIntervals guards an interval count that does NOT permit zero:
// the Poisson trajectory has no time-0 entry, so t ≤ 0 is rejected.
// Complexity: O(1).
func ValidateIntervals(t int) error {
	if t <= 0 {
		return validatorErrorf("ValidateIntervals", ErrInvalidStepCount)
	}

	return nil
}

// ValidateScale rejects a negative standard deviation or rate; zero is
// legal (σ=0 yields a constant trajectory, λ=0 an event-free one).
// Complexity: O(1).
func ValidateScale(v float64) error {
	if v < 0 || math.IsNaN(v) {
		return validatorErrorf("ValidateScale", ErrInvalidScale)
	}

	return nil
}
