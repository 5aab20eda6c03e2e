package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochastic/markov"
)

var markovCmd = &cobra.Command{
	Use:   "markov",
	Short: "Traverse a finite-state Markov chain",
	Long: `Traverse a finite-state Markov chain. The transition matrix is given
row-major with rows separated by ';' and entries by ',':

  stochastic markov --states A,B --matrix "0,1;1,0" --initial A --steps 3`,
	RunE: runMarkov,
}

func init() {
	markovCmd.Flags().Int("steps", 10, "Number of transitions")
	markovCmd.Flags().StringSlice("states", nil, "Ordered state labels")
	markovCmd.Flags().String("matrix", "", "Row-stochastic transition matrix (rows ';', entries ',')")
	markovCmd.Flags().String("initial", "", "Initial state label")
	rootCmd.AddCommand(markovCmd)
}

// parseMatrix parses the ';'/',' row-major matrix notation.
func parseMatrix(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("markov: --matrix is required")
	}
	rows := strings.Split(s, ";")
	out := make([][]float64, len(rows))
	for i, row := range rows {
		cells := strings.Split(row, ",")
		out[i] = make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("markov: matrix entry %d,%d: %w", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

func runMarkov(cmd *cobra.Command, _ []string) error {
	steps, err := cmd.Flags().GetInt("steps")
	if err != nil {
		return err
	}
	states, err := cmd.Flags().GetStringSlice("states")
	if err != nil {
		return err
	}
	matrixArg, err := cmd.Flags().GetString("matrix")
	if err != nil {
		return err
	}
	initial, err := cmd.Flags().GetString("initial")
	if err != nil {
		return err
	}

	matrix, err := parseMatrix(matrixArg)
	if err != nil {
		return err
	}
	chain, err := markov.NewChain(states, matrix)
	if err != nil {
		return err
	}

	var opts []markov.Option
	if seed, ok, err := seedOptions(cmd); err != nil {
		return err
	} else if ok {
		opts = append(opts, markov.WithSeed(seed))
	}

	traj, err := chain.Traverse(initial, steps, opts...)
	if err != nil {
		return err
	}
	cmd.Println(strings.Join(traj, " -> "))

	return nil
}
