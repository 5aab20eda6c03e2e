package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
)

// Source is a per-call pseudo-random stream. It is created (optionally
// seeded) at the start of a generation call, consumed deterministically
// during that call, and discarded after. Never share one Source across
// concurrent calls.
type Source struct {
	rng *rand.Rand
}

// New returns a Source with a deterministic stream for the given seed.
// Two Sources built from the same seed produce identical batches.
// Complexity: O(1).
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// NewEntropy returns a Source seeded from OS entropy (crypto/rand).
// Use it when reproducibility is not requested.
// Complexity: O(1).
func NewEntropy() *Source {
	var b [8]byte
	// crypto/rand.Read never fails on supported platforms; fall back to a
	// zero seed rather than panic if it ever does.
	_, _ = crand.Read(b[:])

	return New(int64(binary.LittleEndian.Uint64(b[:])))
}

// FromRand adopts an existing *rand.Rand. Panics on nil to surface
// programmer error early; prefer New for reproducible runs.
func FromRand(r *rand.Rand) *Source {
	if r == nil {
		panic("randsrc: FromRand(nil)")
	}

	return &Source{rng: r}
}

// Uniform returns n draws uniform in [0,1). n ≤ 0 yields an empty slice
// and consumes no entropy. Complexity: O(n).
func (s *Source) Uniform(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()
	}

	return out
}

// Categorical returns n draws from {0..len(probs)-1} distributed by probs.
// The caller is responsible for validating probs (prob.ValidateDistribution);
// Categorical itself only guarantees a stable cumulative-scan draw order and
// one uniform per sample. Floating-point residue at the top of the cumulative
// sum resolves to the last index. Complexity: O(n·k), k = len(probs).
func (s *Source) Categorical(n int, probs []float64) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	var u, cum float64
	for i := range out {
		u = s.rng.Float64()
		cum = 0.0
		out[i] = len(probs) - 1 // residue fallback
		for k, p := range probs {
			cum += p
			if u < cum {
				out[i] = k
				break
			}
		}
	}

	return out
}

// Normal returns n draws from a zero-mean Gaussian with standard deviation
// sigma. sigma=0 yields exact zeros while still consuming one draw per
// sample, keeping downstream draw sequences seed-stable. Complexity: O(n).
func (s *Source) Normal(n int, sigma float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.NormFloat64() * sigma
	}

	return out
}

// poissonChunk caps the λ handed to one Knuth round so exp(-λ) never
// underflows; Poisson(λ1+λ2) = Poisson(λ1) + Poisson(λ2).
const poissonChunk = 500.0

// Poisson returns n draws from a Poisson(rate) distribution using Knuth's
// multiplication method, with large rates split additively into chunks.
// rate=0 is a draw-free fast path returning zeros.
// Complexity: O(n·rate) expected.
func (s *Source) Poisson(n int, rate float64) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	if rate == 0 {
		return out
	}
	for i := range out {
		out[i] = s.poissonOne(rate)
	}

	return out
}

// poissonOne draws a single Poisson(rate) sample, splitting the rate into
// chunks of at most poissonChunk.
func (s *Source) poissonOne(rate float64) int {
	total := 0
	for rate > 0 {
		step := rate
		if step > poissonChunk {
			step = poissonChunk
		}
		rate -= step

		limit := math.Exp(-step)
		k := 0
		p := 1.0
		for {
			p *= s.rng.Float64()
			if p <= limit {
				break
			}
			k++
		}
		total += k
	}

	return total
}
