// Package brownian generates Brownian-motion trajectories in 1, 2, or 3
// dimensions: independent zero-mean Gaussian increments per axis,
// cumulatively summed and prefixed with the initial position.
//
// What:
//
//   - Motion(steps, sigma, dim, opts...) draws steps d-dimensional Gaussian
//     increments with per-axis standard deviation sigma (axes independent,
//     no cross-correlation) and returns steps+1 positions.
//   - σ = 0 is legal and yields a constant trajectory; steps = 0 yields the
//     single-point trajectory without consuming entropy.
//
// Determinism:
//
//   - All steps·dim normal draws happen in one step-major batch before the
//     cumulative pass; WithSeed freezes the stream bit-for-bit.
//
// Errors:
//
//   - prob.ErrInvalidStepCount: steps < 0.
//   - prob.ErrInvalidScale: sigma < 0.
//   - prob.ErrDimensionMismatch: dim outside 1..3 or initial position of
//     the wrong arity.
//
// Complexity: O(N·d) time and memory.
package brownian
