package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochastic/stats"
)

// printFloatTrajectory writes one position per line: "k: (x, y)".
func printFloatTrajectory(cmd *cobra.Command, traj [][]float64) {
	for k, p := range traj {
		parts := make([]string, len(p))
		for a, v := range p {
			parts[a] = fmt.Sprintf("%.4f", v)
		}
		cmd.Printf("%d: (%s)\n", k, strings.Join(parts, ", "))
	}
}

// printIntTrajectory writes one lattice position per line.
func printIntTrajectory[P ~[]int](cmd *cobra.Command, traj []P) {
	for k, p := range traj {
		parts := make([]string, len(p))
		for a, v := range p {
			parts[a] = fmt.Sprintf("%d", v)
		}
		cmd.Printf("%d: (%s)\n", k, strings.Join(parts, ", "))
	}
}

// printSummary writes the final/mean/variance triple, one line each.
func printSummary(cmd *cobra.Command, s stats.Summary) {
	cmd.Printf("final:    %v\n", s.Final)
	cmd.Printf("mean:     %v\n", s.Mean)
	cmd.Printf("variance: %v\n", s.Variance)
}

// maybeSummarize prints the summary when --summary was requested.
func maybeSummarize(cmd *cobra.Command, traj [][]float64) error {
	want, err := cmd.Flags().GetBool("summary")
	if err != nil || !want {
		return err
	}
	s, err := stats.Summarize(traj)
	if err != nil {
		return err
	}
	printSummary(cmd, s)

	return nil
}
