package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stochastic",
	Short: "Reproducible stochastic-process trajectory generator",
	Long: `stochastic generates exact, seeded trajectories of lattice random walks,
Brownian motion, finite-state Markov chains, and Poisson arrival processes.
Every subcommand prints the full trajectory; pass --summary for final state,
per-axis mean, and population variance.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for reproducible runs (omit for OS entropy)")
	rootCmd.PersistentFlags().Bool("summary", false, "Print summary statistics after the trajectory")
}

// seedOptions reads the persistent --seed flag; ok is false when the flag
// was not set, meaning the generator should fall back to OS entropy.
func seedOptions(cmd *cobra.Command) (seed int64, ok bool, err error) {
	if !cmd.Flags().Changed("seed") {
		return 0, false, nil
	}
	seed, err = cmd.Flags().GetInt64("seed")

	return seed, err == nil, err
}
