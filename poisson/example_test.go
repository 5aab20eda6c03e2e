package poisson_test

import (
	"fmt"

	"github.com/katalvlaran/stochastic/poisson"
)

// ExampleProcess demonstrates the λ=0 degenerate trajectory: three unit
// intervals, no events, flat cumulative total.
func ExampleProcess() {
	traj, _ := poisson.Process(3, 0)
	for _, ev := range traj {
		fmt.Printf("t=%d occurred=%v cumulative=%d\n", ev.Time, ev.Occurred, ev.Cumulative)
	}

	// Output:
	// t=1 occurred=false cumulative=0
	// t=2 occurred=false cumulative=0
	// t=3 occurred=false cumulative=0
}
