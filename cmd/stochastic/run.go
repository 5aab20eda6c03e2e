package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochastic/brownian"
	"github.com/katalvlaran/stochastic/markov"
	"github.com/katalvlaran/stochastic/poisson"
	"github.com/katalvlaran/stochastic/stats"
	"github.com/katalvlaran/stochastic/walk"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run a process scenario described in a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenario,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// scenario is the YAML schema for one generation run. Seed is a pointer so
// an absent key falls back to OS entropy rather than seed 0.
type scenario struct {
	Process string `yaml:"process"` // walk | brownian | markov | poisson
	Steps   int    `yaml:"steps"`
	Seed    *int64 `yaml:"seed"`
	Summary bool   `yaml:"summary"`

	Walk struct {
		Dimensions    int       `yaml:"dimensions"`
		Probabilities []float64 `yaml:"probabilities"`
		Initial       []int     `yaml:"initial"`
	} `yaml:"walk"`

	Brownian struct {
		Dimensions int       `yaml:"dimensions"`
		Sigma      float64   `yaml:"sigma"`
		Initial    []float64 `yaml:"initial"`
	} `yaml:"brownian"`

	Markov struct {
		States  []string    `yaml:"states"`
		Matrix  [][]float64 `yaml:"matrix"`
		Initial string      `yaml:"initial"`
	} `yaml:"markov"`

	Poisson struct {
		Intervals int     `yaml:"intervals"`
		Rate      float64 `yaml:"rate"`
	} `yaml:"poisson"`
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("run: read scenario: %w", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("run: parse scenario: %w", err)
	}

	return &sc, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	switch sc.Process {
	case "walk":
		return scenarioWalk(cmd, sc)
	case "brownian":
		return scenarioBrownian(cmd, sc)
	case "markov":
		return scenarioMarkov(cmd, sc)
	case "poisson":
		return scenarioPoisson(cmd, sc)
	default:
		return fmt.Errorf("run: unknown process %q (want walk|brownian|markov|poisson)", sc.Process)
	}
}

func scenarioWalk(cmd *cobra.Command, sc *scenario) error {
	dirs, err := directionsFor(sc.Walk.Dimensions)
	if err != nil {
		return err
	}
	var opts []walk.Option
	if sc.Seed != nil {
		opts = append(opts, walk.WithSeed(*sc.Seed))
	}
	if len(sc.Walk.Initial) > 0 {
		opts = append(opts, walk.WithInitial(sc.Walk.Initial...))
	}
	traj, err := walk.Walk(sc.Steps, dirs, sc.Walk.Probabilities, opts...)
	if err != nil {
		return err
	}
	printIntTrajectory(cmd, traj)
	if sc.Summary {
		return summarizeTo(cmd, stats.FromInts(traj))
	}

	return nil
}

func scenarioBrownian(cmd *cobra.Command, sc *scenario) error {
	var opts []brownian.Option
	if sc.Seed != nil {
		opts = append(opts, brownian.WithSeed(*sc.Seed))
	}
	if len(sc.Brownian.Initial) > 0 {
		opts = append(opts, brownian.WithInitial(sc.Brownian.Initial...))
	}
	traj, err := brownian.Motion(sc.Steps, sc.Brownian.Sigma, sc.Brownian.Dimensions, opts...)
	if err != nil {
		return err
	}
	printFloatTrajectory(cmd, traj)
	if sc.Summary {
		return summarizeTo(cmd, traj)
	}

	return nil
}

func scenarioMarkov(cmd *cobra.Command, sc *scenario) error {
	chain, err := markov.NewChain(sc.Markov.States, sc.Markov.Matrix)
	if err != nil {
		return err
	}
	var opts []markov.Option
	if sc.Seed != nil {
		opts = append(opts, markov.WithSeed(*sc.Seed))
	}
	traj, err := chain.Traverse(sc.Markov.Initial, sc.Steps, opts...)
	if err != nil {
		return err
	}
	cmd.Println(strings.Join(traj, " -> "))

	return nil
}

func scenarioPoisson(cmd *cobra.Command, sc *scenario) error {
	var opts []poisson.Option
	if sc.Seed != nil {
		opts = append(opts, poisson.WithSeed(*sc.Seed))
	}
	traj, err := poisson.Process(sc.Poisson.Intervals, sc.Poisson.Rate, opts...)
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

// summarizeTo prints the summary unconditionally (scenario-level switch).
func summarizeTo(cmd *cobra.Command, traj [][]float64) error {
	s, err := stats.Summarize(traj)
	if err != nil {
		return err
	}
	printSummary(cmd, s)

	return nil
}
