package experiments

import (
	"hex/config"
	"hex/experiments/metrics"
	"hex/searcher"
)

var throughputGoroutines = []int{1, 2, 4, 8}

// RunThroughputExperiment measures how the trial throughput of the default
// playout scales with the number of goroutines. Each matchup uses the same
// config for both players so game lengths stay comparable; the move records
// carry the search durations.
func RunThroughputExperiment(cfg config.Config) (string, error) {
	playout, _ := searcher.ParsePlayout(cfg.Search.Playout)
	configs := make([]metrics.AgentConfig, 0, len(throughputGoroutines))
	matchUps := make([][]metrics.AgentConfig, 0, len(throughputGoroutines))
	for i, goroutines := range throughputGoroutines {
		c := metrics.AgentConfig{
			ID:         i + 1,
			Multiplier: cfg.Search.SampleMultiplier,
			Goroutines: goroutines,
			Playout:    playout.String(),
		}
		configs = append(configs, c)
		matchUps = append(matchUps, []metrics.AgentConfig{c, c})
	}
	return runExperiment("throughput", cfg, configs, matchUps)
}
