package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochastic/poisson"
)

var poissonCmd = &cobra.Command{
	Use:   "poisson",
	Short: "Generate a Poisson arrival process over unit intervals",
	RunE:  runPoisson,
}

func init() {
	poissonCmd.Flags().Int("intervals", 10, "Total number of unit time intervals")
	poissonCmd.Flags().Float64("rate", 1.0, "Event rate λ per unit interval")
	rootCmd.AddCommand(poissonCmd)
}

func runPoisson(cmd *cobra.Command, _ []string) error {
	intervals, err := cmd.Flags().GetInt("intervals")
	if err != nil {
		return err
	}
	rate, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return err
	}

	var opts []poisson.Option
	if seed, ok, err := seedOptions(cmd); err != nil {
		return err
	} else if ok {
		opts = append(opts, poisson.WithSeed(seed))
	}

	traj, err := poisson.Process(intervals, rate, opts...)
	if err != nil {
		return err
	}
	for _, ev := range traj {
		flag := 0
		if ev.Occurred {
			flag = 1
		}
		cmd.Printf("t=%d events=%d flag=%d cumulative=%d\n", ev.Time, ev.Count, flag, ev.Cumulative)
	}

	return nil
}
