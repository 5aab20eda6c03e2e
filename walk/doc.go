// Package walk generates lattice random-walk trajectories in 1, 2, or 3
// dimensions from a direction set and an aligned categorical distribution.
//
// What:
//
//   - Walk is the single engine: it draws N categorical direction indices,
//     maps them to unit moves, and emits the cumulative positions prefixed
//     by the initial position (N+1 points in total).
//   - Directions1D/2D/3D are the canonical axis-aligned direction sets.
//   - Walk1D/Walk2D/Walk3D are thin wrappers with named per-direction
//     probabilities, mirroring the classic simulator signatures.
//
// Why:
//
//   - The 1D/2D/3D variants differ only in their direction set; one engine
//     parameterized by DirectionSet keeps the sampling logic in one place.
//
// Determinism:
//
//   - WithSeed(s) (or WithSource) freezes the draw stream: same seed, same
//     configuration ⇒ identical trajectories element-for-element.
//   - All N indices are drawn in one batch before the cumulative pass.
//
// Errors:
//
//   - prob.ErrInvalidStepCount: steps < 0 (steps == 0 is the legal
//     single-point degenerate walk).
//   - prob.ErrInvalidDistribution: probabilities do not sum to 1 within
//     prob.Tolerance, or are negative.
//   - prob.ErrDimensionMismatch: ragged direction set, probability/direction
//     count mismatch, or initial position of the wrong arity.
//
// Complexity: O(N·d) time, O(N·d) memory for an N-step walk in d dimensions.
package walk
