package markov_test

import (
	"fmt"

	"github.com/katalvlaran/stochastic/markov"
)

// ExampleChain_Traverse demonstrates a deterministic two-state flip-flop:
// with a 0/1 transition matrix the path is the same for every seed.
func ExampleChain_Traverse() {
	chain, _ := markov.NewChain(
		[]string{"A", "B"},
		[][]float64{
			{0, 1},
			{1, 0},
		},
	)

	traj, _ := chain.Traverse("A", 3, markov.WithSeed(42))
	fmt.Println(traj)

	// Output:
	// [A B A B]
}
