// Package stats computes summary statistics over a produced trajectory:
// final state, per-axis arithmetic mean, and per-axis population variance
// (denominator equal to the full sample count, not count−1).
//
// Summarize is a pure function — it never mutates its input and holds no
// state — so a rendering collaborator and a statistics pass can read the
// same trajectory safely.
package stats
