package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochastic/stats"
	"github.com/katalvlaran/stochastic/walk"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Generate a lattice random walk (1D/2D/3D)",
	Long: `Generate a lattice random walk. Probabilities align with the canonical
direction order: 1D (+,-), 2D (+x,-x,+y,-y), 3D (+x,-x,+y,-y,+z,-z).`,
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().Int("steps", 50, "Number of steps")
	walkCmd.Flags().Int("dim", 1, "Dimensionality: 1, 2, or 3")
	walkCmd.Flags().Float64Slice("probs", nil, "Per-direction probabilities (defaults to uniform)")
	walkCmd.Flags().IntSlice("initial", nil, "Initial position (defaults to origin)")
	rootCmd.AddCommand(walkCmd)
}

// directionsFor maps the --dim flag onto a canonical direction set.
func directionsFor(dim int) (walk.DirectionSet, error) {
	switch dim {
	case 1:
		return walk.Directions1D, nil
	case 2:
		return walk.Directions2D, nil
	case 3:
		return walk.Directions3D, nil
	default:
		return nil, fmt.Errorf("walk: unsupported dimensionality %d", dim)
	}
}

func runWalk(cmd *cobra.Command, _ []string) error {
	steps, err := cmd.Flags().GetInt("steps")
	if err != nil {
		return err
	}
	dim, err := cmd.Flags().GetInt("dim")
	if err != nil {
		return err
	}
	dirs, err := directionsFor(dim)
	if err != nil {
		return err
	}
	probs, err := cmd.Flags().GetFloat64Slice("probs")
	if err != nil {
		return err
	}
	if len(probs) == 0 {
		probs = make([]float64, len(dirs))
		for i := range probs {
			probs[i] = 1.0 / float64(len(dirs))
		}
	}
	initial, err := cmd.Flags().GetIntSlice("initial")
	if err != nil {
		return err
	}

	var opts []walk.Option
	if seed, ok, err := seedOptions(cmd); err != nil {
		return err
	} else if ok {
		opts = append(opts, walk.WithSeed(seed))
	}
	if len(initial) > 0 {
		opts = append(opts, walk.WithInitial(initial...))
	}

	traj, err := walk.Walk(steps, dirs, probs, opts...)
	if err != nil {
		return err
	}
	printIntTrajectory(cmd, traj)

	return maybeSummarize(cmd, stats.FromInts(traj))
}
