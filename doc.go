// Package stochastic is your in-memory playground for generating exact,
// reproducible trajectories of classic stochastic processes — from lattice
// random walks to Brownian motion, Markov chains and Poisson arrivals.
//
// 🚀 What is stochastic?
//
//	A small, deterministic-by-construction library that brings together:
//		• Lattice random walks: 1D/2D/3D, one engine parameterized by a direction set
//		• Brownian motion: independent Gaussian increments per axis, 1D/2D/3D
//		• Markov chains: finite-state traversal over a validated stochastic matrix
//		• Poisson processes: per-interval event counts with cumulative totals
//		• Summary statistics: final state, per-axis mean and population variance
//
// ✨ Why choose stochastic?
//
//   - Reproducible by contract – same seed, same configuration ⇒ bit-identical trajectories
//   - Validated before sampled – malformed distributions never reach the RNG
//   - Concurrency-friendly – every call owns its random source; no global generator state
//   - Pure Go engine – no cgo, no I/O, no hidden state
//
// Under the hood, everything is organized per concern:
//
//	randsrc/  — seeded random source with batch uniform/categorical/normal/poisson draws
//	prob/     — probability-distribution and stochastic-matrix validation + shared sentinels
//	walk/     — lattice random walks (direction-set engine + 1D/2D/3D wrappers)
//	brownian/ — Gaussian-increment trajectories
//	markov/   — finite-state chain traversal
//	poisson/  — per-interval arrival counts
//	stats/    — trajectory summary statistics
//
// Every generator returns a fully materialized trajectory: element 0 is the
// initial state, element k is the cumulative result after k transitions
// (Poisson is the documented exception — exactly T interval entries, times 1..T).
// Rendering and animation are downstream consumers of that immutable sequence;
// the engine never depends on them.
//
//	go get github.com/katalvlaran/stochastic
package stochastic
