package markov

import "errors"

// Sentinel errors for markov operations.
var (
	// ErrUnknownInitialState indicates the requested initial state is not
	// part of the chain's alphabet.
	ErrUnknownInitialState = errors.New("markov: initial state not in alphabet")
	// ErrDuplicateState indicates the alphabet contains a repeated label.
	ErrDuplicateState = errors.New("markov: duplicate state label")
)

// Chain is a finite Markov chain: an ordered alphabet of unique labels and
// a square row-stochastic transition matrix aligned with it. It is
// immutable once built by NewChain; one Chain may serve many concurrent
// Traverse calls because traversal never mutates it.
type Chain struct {
	states []string
	matrix [][]float64
	index  map[string]int // label -> row, built once in NewChain
}

// States returns a copy of the ordered state alphabet.
func (c *Chain) States() []string {
	return append([]string(nil), c.states...)
}

// Matrix returns a deep copy of the transition matrix, e.g. for a rendering
// collaborator that draws edges and labels. Mutating the copy never affects
// the chain.
func (c *Chain) Matrix() [][]float64 {
	out := make([][]float64, len(c.matrix))
	for i, row := range c.matrix {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
