// Package prob centralizes parameter validation for every process family
// in github.com/katalvlaran/stochastic.
//
// What:
//
//   - ValidateDistribution checks that a categorical distribution is
//     non-negative and sums to 1 within Tolerance.
//   - ValidateStochasticMatrix checks that a square matrix is row-stochastic.
//   - ValidateSteps / ValidateIntervals / ValidateScale guard step counts,
//     interval counts, and non-negative scale/rate parameters.
//
// Why:
//
//   - Validation happens strictly before any random draw: a rejected
//     configuration never consumes entropy and never yields a partial
//     trajectory.
//   - One source of truth keeps the guard logic identical across the walk,
//     brownian, markov and poisson generators.
//
// Errors:
//
//   - ErrInvalidDistribution: probabilities are negative or do not sum to 1.
//   - ErrInvalidStepCount: negative step count, or non-positive interval count.
//   - ErrInvalidScale: negative standard deviation or rate.
//   - ErrDimensionMismatch: matrix/vector shape inconsistency.
//
// All checks are pure, deterministic, and allocate nothing.
package prob
