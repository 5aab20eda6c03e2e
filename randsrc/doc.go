// Package randsrc provides the explicitly scoped random source behind every
// generator in github.com/katalvlaran/stochastic.
//
// What:
//
//   - Source wraps a *math/rand.Rand owned by a single generation call.
//   - New(seed) yields a deterministic stream; NewEntropy() seeds from
//     OS entropy; FromRand adopts a caller-supplied generator.
//   - Batch draws: Uniform, Categorical, Normal, Poisson. Each batch of n
//     draws consumes entropy in one documented pass, so re-running the same
//     seed with the same call sequence reproduces trajectories bit-for-bit.
//
// Why:
//
//   - No global generator state: two trajectories generated concurrently on
//     separate Sources can never corrupt each other's draw sequence. A Source
//     itself is NOT safe for concurrent use — one Source per call.
//
// Determinism:
//
//   - Uniform/Normal consume exactly one underlying draw per sample.
//   - Categorical consumes exactly one uniform per sample.
//   - Poisson (Knuth multiplication method) consumes a variable number of
//     uniforms per sample — at least one — in a fixed, documented order;
//     rate 0 is a draw-free fast path.
//
// Complexity: all batches are O(n) in the number of samples, except Poisson
// which is O(n·λ) expected.
package randsrc
