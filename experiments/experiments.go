package experiments

import (
	"fmt"

	"hex/agent"
	"hex/config"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"

	"github.com/rs/zerolog/log"
)

// RunPlayoutExperiment pits the single-sided playout against the alternating
// one. Both sides get the same budget and every pairing is played with each
// agent moving first, since the first mover has the advantage in hex. It
// returns the directory holding the CSV records.
func RunPlayoutExperiment(cfg config.Config) (string, error) {
	single := metrics.AgentConfig{
		ID:         1,
		Multiplier: cfg.Search.SampleMultiplier,
		Goroutines: cfg.Search.Goroutines,
		Playout:    searcher.PlayoutSingleSided.String(),
	}
	alternating := single
	alternating.ID = 2
	alternating.Playout = searcher.PlayoutAlternating.String()

	matchUps := [][]metrics.AgentConfig{
		{single, alternating},
		{alternating, single},
	}
	return runExperiment("playout", cfg, []metrics.AgentConfig{single, alternating}, matchUps)
}

func runExperiment(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	logger := log.With().Str("experiment", name).Str("run", writer.RunID().String()).Logger()

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	logger.Info().Msg("stored agent configs")

	lattice := game.NewLattice(cfg.BoardSize)
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	logger.Info().Msgf("starting %s experiment...", name)
	for mi, matchup := range matchUps {
		config1, config2 := matchup[0], matchup[1]
		logger.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.Experiment.Games; i++ {
			count++
			winner, gameMetric, moveMetrics, err := runGame(lattice, cfg, count, config1, config2)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			logger.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}
	logger.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	logger.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	logger.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame plays one game between two Monte Carlo agents. Player1 moves first.
func runGame(l *game.Lattice, cfg config.Config, gameID int, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := []engine.Player{
		{Name: "Player1", Agent: agent.NewAIAgent(createMonteCarlo(cfg, gameID, 0, config1))},
		{Name: "Player2", Agent: agent.NewAIAgent(createMonteCarlo(cfg, gameID, 1, config2))},
	}
	e := engine.NewLocalEngine(cfg.BoardSize, players, engine.WithLattice(l))
	return e.Run()
}

func createMonteCarlo(cfg config.Config, gameID, side int, config metrics.AgentConfig) *searcher.MonteCarlo {
	playout, ok := searcher.ParsePlayout(config.Playout)
	if !ok {
		panic(fmt.Sprintf("unknown playout %q", config.Playout))
	}
	options := []searcher.Option{
		searcher.WithMultiplier(config.Multiplier),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithPlayout(playout),
		searcher.WithMetrics(metrics.NewPrometheusCollector()),
	}
	if cfg.Search.Seed != 0 {
		// Distinct but reproducible streams per game and side
		options = append(options, searcher.WithSeed(cfg.Search.Seed+uint64(2*gameID+side)))
	}
	return searcher.NewMonteCarlo(options...)
}
