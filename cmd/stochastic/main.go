// Command stochastic generates reproducible stochastic-process trajectories
// (lattice walks, Brownian motion, Markov chains, Poisson arrivals) from
// flags or a YAML scenario and prints them with optional summary statistics.
package main

func main() {
	Execute()
}
