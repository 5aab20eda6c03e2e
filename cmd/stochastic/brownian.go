package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochastic/brownian"
)

var brownianCmd = &cobra.Command{
	Use:   "brownian",
	Short: "Generate Brownian motion (1D/2D/3D)",
	RunE:  runBrownian,
}

func init() {
	brownianCmd.Flags().Int("steps", 100, "Number of moves")
	brownianCmd.Flags().Int("dim", 1, "Dimensionality: 1, 2, or 3")
	brownianCmd.Flags().Float64("sigma", 1.0, "Standard deviation of Gaussian steps")
	brownianCmd.Flags().Float64Slice("initial", nil, "Initial position (defaults to origin)")
	rootCmd.AddCommand(brownianCmd)
}

func runBrownian(cmd *cobra.Command, _ []string) error {
	steps, err := cmd.Flags().GetInt("steps")
	if err != nil {
		return err
	}
	dim, err := cmd.Flags().GetInt("dim")
	if err != nil {
		return err
	}
	sigma, err := cmd.Flags().GetFloat64("sigma")
	if err != nil {
		return err
	}
	initial, err := cmd.Flags().GetFloat64Slice("initial")
	if err != nil {
		return err
	}

	var opts []brownian.Option
	if seed, ok, err := seedOptions(cmd); err != nil {
		return err
	} else if ok {
		opts = append(opts, brownian.WithSeed(seed))
	}
	if len(initial) > 0 {
		opts = append(opts, brownian.WithInitial(initial...))
	}

	traj, err := brownian.Motion(steps, sigma, dim, opts...)
	if err != nil {
		return err
	}
	printFloatTrajectory(cmd, traj)

	return maybeSummarize(cmd, traj)
}
