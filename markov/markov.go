package markov

import (
	"fmt"

	"github.com/katalvlaran/stochastic/prob"
)

// Method tags for error wrapping.
const (
	methodNewChain = "NewChain"
	methodTraverse = "Traverse"
)

// NewChain builds a validated chain from an ordered state alphabet and its
// transition matrix. Labels must be unique; the matrix must be square over
// the alphabet with every row a categorical distribution summing to 1
// within prob.Tolerance. A malformed chain is rejected here, before any
// traversal can draw from an undefined distribution.
func NewChain(states []string, matrix [][]float64) (*Chain, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("%s: empty alphabet: %w", methodNewChain, prob.ErrDimensionMismatch)
	}
	index := make(map[string]int, len(states))
	for i, s := range states {
		if _, seen := index[s]; seen {
			return nil, fmt.Errorf("%s: state %q: %w", methodNewChain, s, ErrDuplicateState)
		}
		index[s] = i
	}
	if err := prob.ValidateStochasticMatrix(matrix, len(states)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewChain, err)
	}

	// Deep-copy inputs so later caller mutations cannot corrupt the chain.
	cs := append([]string(nil), states...)
	cm := make([][]float64, len(matrix))
	for i, row := range matrix {
		cm[i] = append([]float64(nil), row...)
	}

	return &Chain{states: cs, matrix: cm, index: index}, nil
}

// Traverse generates a state sequence of steps transitions starting from
// initial. The result has steps+1 labels: the initial state plus one drawn
// state per transition, each drawn from the current state's matrix row.
// steps == 0 performs no draws and returns the single-label sequence.
func (c *Chain) Traverse(initial string, steps int, opts ...Option) ([]string, error) {
	if err := prob.ValidateSteps(steps); err != nil {
		return nil, fmt.Errorf("%s: steps=%d: %w", methodTraverse, steps, err)
	}
	row, ok := c.index[initial]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", methodTraverse, initial, ErrUnknownInitialState)
	}

	traj := make([]string, steps+1)
	traj[0] = initial
	if steps == 0 {
		return traj, nil
	}

	// One categorical draw per transition, in trajectory order: the next
	// distribution depends on the previous output, so draws cannot batch
	// across steps.
	src := resolveConfig(opts...).source()
	for k := 1; k <= steps; k++ {
		row = src.Categorical(1, c.matrix[row])[0]
		traj[k] = c.states[row]
	}

	return traj, nil
}
