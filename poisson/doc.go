// Package poisson generates Poisson arrival trajectories over discrete unit
// time intervals: independent Poisson(λ) event counts per interval with a
// running cumulative total.
//
// What:
//
//   - Process(totalTime, rate, opts...) returns exactly totalTime events,
//     one per unit interval, times 1..totalTime. Each Event records the
//     interval's raw count, whether at least one event occurred, and the
//     cumulative count through that interval.
//
// Contract asymmetry (deliberate):
//
//   - Unlike the walk/brownian/markov trajectories there is NO time-0
//     entry; totalTime ≤ 0 is rejected rather than producing an empty
//     sequence.
//
// Determinism:
//
//   - All totalTime counts are drawn in one batch; WithSeed freezes the
//     stream. rate = 0 performs no draws and yields an event-free record.
//
// Errors:
//
//   - prob.ErrInvalidStepCount: totalTime ≤ 0.
//   - prob.ErrInvalidScale: rate < 0.
//
// Complexity: O(T·λ) expected time, O(T) memory.
package poisson
