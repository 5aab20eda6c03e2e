// Package markov generates discrete-state sequences by traversing a finite
// Markov chain: a validated row-stochastic transition matrix over a fixed,
// ordered state alphabet.
//
// What:
//
//   - Chain pairs the ordered state labels with their transition matrix;
//     NewChain validates label uniqueness, square shape, and
//     row-stochasticity (tolerance prob.Tolerance) before any traversal.
//   - Traverse(initial, steps, opts...) walks the chain: locate the current
//     state's row, draw the next state from that row's categorical
//     distribution, repeat. It returns steps+1 labels, the initial state
//     included at index 0.
//
// Why:
//
//   - This is the only generator whose next-state distribution depends on
//     the previous output, not on fixed per-step parameters — a genuine
//     state machine. An absorbing state (self-loop probability 1) simply
//     stays put; that is ordinary chain behavior, not an error.
//
// Determinism:
//
//   - One categorical draw per transition, in trajectory order. WithSeed
//     freezes the stream: 0/1 matrices yield the same path for every seed.
//
// Errors:
//
//   - ErrUnknownInitialState: the initial label is not in the alphabet.
//   - ErrDuplicateState: the alphabet contains a repeated label.
//   - prob.ErrDimensionMismatch / prob.ErrInvalidDistribution: malformed
//     transition matrix (rejected in NewChain, before any draw).
//   - prob.ErrInvalidStepCount: steps < 0.
//
// Complexity: NewChain O(n²); Traverse O(N·n) for N steps over n states.
package markov
