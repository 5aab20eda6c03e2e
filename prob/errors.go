package prob

import "errors"

// Sentinel errors shared by all generator packages. Callers branch with
// errors.Is; call sites wrap them with operation context via %w.
var (
	// ErrInvalidDistribution indicates probabilities that are negative,
	// empty, or do not sum to 1 within Tolerance.
	ErrInvalidDistribution = errors.New("prob: probabilities must be non-negative and sum to 1")
	// ErrInvalidStepCount indicates a negative step count or a non-positive
	// interval count.
	ErrInvalidStepCount = errors.New("prob: invalid step count")
	// ErrInvalidScale indicates a negative standard deviation or rate.
	ErrInvalidScale = errors.New("prob: scale must be non-negative")
	// ErrDimensionMismatch indicates inconsistent vector/matrix shapes.
	ErrDimensionMismatch = errors.New("prob: dimension mismatch")
)
