package main

import (
	"fmt"

	"illimat/experiments"
)

func main() {
	runThroughputExperiment()
	runSelfPlayDemo()
}

func runThroughputExperiment() {
	cfg := experiments.ThroughputConfig{
		Budgets:           []uint32{100, 1000, 10000},
		SearchesPerBudget: 5,
		Seed:              1,
	}

	fmt.Printf("Running throughput experiment...\n")
	records, err := experiments.RunThroughput(cfg)
	if err != nil {
		fmt.Printf("Throughput experiment failed: %v\n", err)
		return
	}
	for _, r := range records {
		fmt.Printf("budget=%d search=%d: %d sims in %v (%.0f sims/s, %d nodes)\n",
			r.Game, r.Step, r.Simulations, r.Duration, r.SimulationsPerSecond, r.TotalNodes)
	}
	fmt.Printf("Finished throughput experiment.\n")
}

func runSelfPlayDemo() {
	fmt.Printf("Running self-play games...\n")
	games, err := experiments.RunSelfPlay(3, 500, 42)
	if err != nil {
		fmt.Printf("Self-play failed: %v\n", err)
		return
	}
	for _, g := range games {
		fmt.Printf("Game %d over! Winner: player %d after %d moves (%v)\n",
			g.ID, g.Winner, g.Moves, g.Duration)
	}
	fmt.Printf("Finished self-play games.\n")
}
