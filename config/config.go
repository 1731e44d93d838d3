package config

import (
	"encoding/json"
	"fmt"
	"os"
	"pacman/heuristic"
	"pacman/maze"
	"pacman/memory"
	"pacman/searcher"
	"pacman/searcher/agent"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const envPrefix = "PACMAN_"

type SearchConfig struct {
	Depth                 int     `yaml:"depth" json:"depth"`
	OutcomeCap            int     `yaml:"outcome_cap" json:"outcome_cap"`
	DeathPenalty          float64 `yaml:"death_penalty" json:"death_penalty"`
	UncertainDeathPenalty float64 `yaml:"uncertain_death_penalty" json:"uncertain_death_penalty"`
	JitterScale           float64 `yaml:"jitter_scale" json:"jitter_scale"`
}

type ExperimentConfig struct {
	Games       int    `yaml:"games" json:"games"`
	Concurrency int    `yaml:"concurrency" json:"concurrency"`
	MaxTicks    int    `yaml:"max_ticks" json:"max_ticks"`
	Out         string `yaml:"out" json:"out"`
}

type Config struct {
	Search      SearchConfig      `yaml:"search" json:"search"`
	Heuristic   heuristic.Weights `yaml:"heuristic" json:"heuristic"`
	Selector    agent.Weights     `yaml:"selector" json:"selector"`
	Maze        maze.Rules        `yaml:"maze" json:"maze"`
	Experiment  ExperimentConfig  `yaml:"experiment" json:"experiment"`
	HistorySize int               `yaml:"history_size" json:"history_size"`
	Seed        uint64            `yaml:"seed" json:"seed"`
	LogLevel    string            `yaml:"log_level" json:"log_level"`
}

func Default() Config {
	return Config{
		Search: SearchConfig{
			Depth:                 searcher.DefaultDepth,
			OutcomeCap:            searcher.DefaultOutcomeCap,
			DeathPenalty:          searcher.DeathPenalty,
			UncertainDeathPenalty: searcher.UncertainDeathPenalty,
			JitterScale:           searcher.JitterScale,
		},
		Heuristic: heuristic.DefaultWeights(),
		Selector:  agent.DefaultWeights(),
		Maze:      maze.DefaultRules(),
		Experiment: ExperimentConfig{
			Games:       30,
			Concurrency: 4,
			MaxTicks:    300,
			Out:         "results",
		},
		HistorySize: memory.DefaultHistorySize,
		Seed:        1,
		LogLevel:    "info",
	}
}

// Load merges defaults, the file at path (YAML or JSON, optional) and PACMAN_* variables, in
// that order, and validates the result.
func Load(path string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("load config file: %w", err)
		}
	}

	loadEnv(&config)

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}
	return nil
}

func loadEnv(config *Config) {
	envInt("DEPTH", &config.Search.Depth)
	envInt("OUTCOME_CAP", &config.Search.OutcomeCap)
	envFloat("JITTER_SCALE", &config.Search.JitterScale)
	envInt("HISTORY_SIZE", &config.HistorySize)
	envInt("GAMES", &config.Experiment.Games)
	envInt("CONCURRENCY", &config.Experiment.Concurrency)
	envInt("MAX_TICKS", &config.Experiment.MaxTicks)
	envInt("MAX_CANDIDATES", &config.Maze.MaxCandidates)
	if v := os.Getenv(envPrefix + "OUT"); v != "" {
		config.Experiment.Out = v
	}
	if v := os.Getenv(envPrefix + "SEED"); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Seed = u
		}
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}

func envInt(name string, target *int) {
	if v := os.Getenv(envPrefix + name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*target = i
		}
	}
}

func envFloat(name string, target *float64) {
	if v := os.Getenv(envPrefix + name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*target = f
		}
	}
}

func (c Config) Validate() error {
	if c.Search.Depth < 1 {
		return fmt.Errorf("depth must be >= 1")
	}
	if c.Search.OutcomeCap < 0 {
		return fmt.Errorf("outcome_cap must be >= 0")
	}
	if c.Search.UncertainDeathPenalty <= 0 || c.Search.UncertainDeathPenalty >= c.Search.DeathPenalty {
		return fmt.Errorf("uncertain_death_penalty must be > 0 and below death_penalty")
	}
	if c.Search.JitterScale < 0 {
		return fmt.Errorf("jitter_scale must be >= 0")
	}
	if c.Selector.HuntDamping < 0 || c.Selector.HuntDamping > 1 {
		return fmt.Errorf("hunt_damping must be between 0 and 1")
	}
	if c.Maze.Lives < 1 {
		return fmt.Errorf("lives must be >= 1")
	}
	if c.Maze.MaxCandidates < 1 {
		return fmt.Errorf("max_candidates must be >= 1")
	}
	if c.HistorySize < 1 {
		return fmt.Errorf("history_size must be >= 1")
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("games must be >= 1")
	}
	if c.Experiment.Concurrency < 1 {
		return fmt.Errorf("concurrency must be >= 1")
	}
	if c.Experiment.MaxTicks < 1 {
		return fmt.Errorf("max_ticks must be >= 1")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the configured zerolog level, or info when it does not parse.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// SearchOptions builds the searcher options for one session. Every session gets its own jitter
// source derived from seed.
func (c Config) SearchOptions(seed uint64) []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(c.Search.Depth),
		searcher.WithOutcomeCap(c.Search.OutcomeCap),
		searcher.WithDeathPenalties(c.Search.DeathPenalty, c.Search.UncertainDeathPenalty),
		searcher.WithJitter(searcher.NewJitter(seed), c.Search.JitterScale),
		searcher.WithMetrics(),
	}
}
