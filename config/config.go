package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"hex/meta"
	"hex/searcher"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the play and experiment commands.
type Config struct {
	BoardSize int `json:"board_size" yaml:"board_size"`

	// Search configures the Monte Carlo player.
	Search SearchConfig `json:"search" yaml:"search"`

	// Experiment configures AI-vs-AI runs.
	Experiment ExperimentConfig `json:"experiment" yaml:"experiment"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

type SearchConfig struct {
	SampleMultiplier int    `json:"sample_multiplier" yaml:"sample_multiplier"`
	Goroutines       int    `json:"goroutines" yaml:"goroutines"`
	Playout          string `json:"playout" yaml:"playout"`
	// Seed makes the search reproducible. Zero seeds from the clock.
	Seed uint64 `json:"seed" yaml:"seed"`
}

type ExperimentConfig struct {
	Games     int    `json:"games" yaml:"games"`
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// MetricsAddr serves Prometheus metrics while the experiment runs. Empty
	// disables the listener.
	MetricsAddr string `json:"metrics_addr" yaml:"metrics_addr"`
}

func Default() Config {
	return Config{
		BoardSize: meta.BOARD_SIZE,
		Search: SearchConfig{
			SampleMultiplier: meta.SAMPLE_MULTIPLIER,
			Goroutines:       meta.GO_ROUTINES,
			Playout:          searcher.PlayoutSingleSided.String(),
		},
		Experiment: ExperimentConfig{
			Games:     meta.GAMES,
			OutputDir: "results",
		},
		LogLevel: "info",
	}
}

// Load reads configuration with priority: env > file > defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&config); err != nil {
		return config, fmt.Errorf("load config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, config); err != nil {
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(config *Config) error {
	ints := []struct {
		name  string
		value *int
	}{
		{"HEX_BOARD_SIZE", &config.BoardSize},
		{"HEX_SAMPLE_MULTIPLIER", &config.Search.SampleMultiplier},
		{"HEX_GOROUTINES", &config.Search.Goroutines},
		{"HEX_GAMES", &config.Experiment.Games},
	}
	for _, env := range ints {
		if v := os.Getenv(env.name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", env.name, err)
			}
			*env.value = i
		}
	}

	if v := os.Getenv("HEX_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HEX_SEED: %w", err)
		}
		config.Search.Seed = seed
	}
	if v := os.Getenv("HEX_PLAYOUT"); v != "" {
		config.Search.Playout = v
	}
	if v := os.Getenv("HEX_OUTPUT_DIR"); v != "" {
		config.Experiment.OutputDir = v
	}
	if v := os.Getenv("HEX_METRICS_ADDR"); v != "" {
		config.Experiment.MetricsAddr = v
	}
	if v := os.Getenv("HEX_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c Config) Validate() error {
	if c.BoardSize < 1 {
		return fmt.Errorf("board_size must be >= 1, got %d", c.BoardSize)
	}
	if c.Search.SampleMultiplier < 1 {
		return fmt.Errorf("sample_multiplier must be >= 1, got %d", c.Search.SampleMultiplier)
	}
	if c.Search.Goroutines < 1 {
		return fmt.Errorf("goroutines must be >= 1, got %d", c.Search.Goroutines)
	}
	if _, ok := searcher.ParsePlayout(c.Search.Playout); !ok {
		return fmt.Errorf("unknown playout %q", c.Search.Playout)
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("games must be >= 1, got %d", c.Experiment.Games)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// SearchOptions turns the search settings into Monte Carlo options. It
// assumes the config has been validated.
func (c Config) SearchOptions() []searcher.Option {
	playout, _ := searcher.ParsePlayout(c.Search.Playout)
	options := []searcher.Option{
		searcher.WithMultiplier(c.Search.SampleMultiplier),
		searcher.WithGoroutines(c.Search.Goroutines),
		searcher.WithPlayout(playout),
	}
	if c.Search.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Search.Seed))
	}
	return options
}
