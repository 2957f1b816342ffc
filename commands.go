package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hex/agent"
	"hex/config"
	"hex/engine"
	"hex/experiments"
	"hex/experiments/metrics"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "hex",
		Short: "Play hex against a Monte Carlo AI",
		Long: `hex plays the connection game on an N×N board. The first player (B)
connects the left and right columns, the second (R) the top and bottom rows.`,
		SilenceUsage: true,
	}
	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal; name a player \"AI\" to let the computer move",
		Args:  cobra.NoArgs,
		RunE:  runPlayCommand,
	}
	experimentCmd = &cobra.Command{
		Use:       "experiment [playout|throughput]",
		Short:     "Run AI-vs-AI games and write the results as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"playout", "throughput"},
		RunE:      runExperimentCommand,
	}

	configPath string
	player1    string
	player2    string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().Int("size", 0, "Board size, overrides the config")
	rootCmd.PersistentFlags().Int("multiplier", 0, "Trials per empty cell, overrides the config")
	rootCmd.PersistentFlags().Int("goroutines", 0, "Goroutines running trials, overrides the config")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed, overrides the config")
	rootCmd.PersistentFlags().String("playout", "", "Playout mode (single, alternating), overrides the config")

	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&player1, "player1", "", "Name of player 1 (B)")
	playCmd.Flags().StringVar(&player2, "player2", "", "Name of player 2 (R)")

	rootCmd.AddCommand(experimentCmd)
}

// loadConfig merges the config file, the environment and the flags set on
// the command line, in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.BoardSize, _ = flags.GetInt("size")
	}
	if flags.Changed("multiplier") {
		cfg.Search.SampleMultiplier, _ = flags.GetInt("multiplier")
	}
	if flags.Changed("goroutines") {
		cfg.Search.Goroutines, _ = flags.GetInt("goroutines")
	}
	if flags.Changed("seed") {
		cfg.Search.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("playout") {
		cfg.Search.Playout, _ = flags.GetString("playout")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}

	if err := setupLogging(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPlayCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	names := []string{player1, player2}
	for i, color := range []string{"B", "R"} {
		if names[i] != "" {
			continue
		}
		fmt.Fprintf(out, "Enter name of Player %d (%s), type \"AI\" for AI\n", i+1, color)
		if !scanner.Scan() {
			return errors.New("no player name given")
		}
		names[i] = strings.TrimSpace(scanner.Text())
	}

	players := make([]engine.Player, len(names))
	for i, name := range names {
		players[i] = engine.Player{Name: name, Agent: agent.New(name, scanner, out, cfg.SearchOptions()...)}
	}

	e := engine.NewLocalEngine(cfg.BoardSize, players, engine.WithOutput(out))
	_, _, _, err = e.Run()
	if errors.Is(err, agent.ErrExit) {
		fmt.Fprintln(out, "Game abandoned.")
		return nil
	}
	return err
}

func runExperimentCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Experiment.MetricsAddr != "" {
		srv := serveMetrics(cfg.Experiment.MetricsAddr)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var dir string
	switch args[0] {
	case "playout":
		dir, err = experiments.RunPlayoutExperiment(cfg)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(cfg)
	default:
		return fmt.Errorf("unknown experiment %q", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", dir)
	return nil
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving prometheus metrics")
	return srv
}
