package experiments

import (
	"context"
	"fmt"
	"pacman/config"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/heuristic"
	"pacman/maze"
	"pacman/memory"
	"pacman/searcher"
	"pacman/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Baseline is the single agent described by cfg.
func Baseline(cfg config.Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{{
		ID:          1,
		Depth:       cfg.Search.Depth,
		OutcomeCap:  cfg.Search.OutcomeCap,
		HistorySize: cfg.HistorySize,
		Seed:        cfg.Seed,
	}}
}

// DepthSweep returns one agent per search depth from 1 up to the configured depth.
func DepthSweep(cfg config.Config) []metrics.AgentConfig {
	var configs []metrics.AgentConfig
	for depth := 1; depth <= cfg.Search.Depth; depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:          depth,
			Depth:       depth,
			OutcomeCap:  cfg.Search.OutcomeCap,
			HistorySize: cfg.HistorySize,
			Seed:        cfg.Seed,
		})
	}
	return configs
}

// NewPlayer wires a fresh session, evaluator, searcher and selector.
func NewPlayer(cfg config.Config, seed uint64) (agent.Agent, *memory.Session) {
	session := memory.NewSession(cfg.HistorySize)
	evaluator := heuristic.New(cfg.Heuristic, session.Visits)
	s := searcher.New(evaluator, cfg.SearchOptions(seed)...)
	return agent.NewSelector(s, session, cfg.Selector), session
}

// Play runs one session on layout.
func Play(cfg config.Config, name string, layout []string, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := maze.Parse(layout, cfg.Maze)
	if err != nil {
		return metrics.GameMetric{}, nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}
	player, session := NewPlayer(cfg, seed)
	e := engine.New(name, state, player,
		engine.WithSeed(seed),
		engine.WithMaxTicks(cfg.Experiment.MaxTicks),
		engine.WithSession(session.ID),
	)
	game, moves := e.Run()
	return game, moves, nil
}

type job struct {
	agent metrics.AgentConfig
	game  int
}

// Run plays cfg.Experiment.Games sessions per agent, cfg.Experiment.Concurrency at a time, and
// stores the records in a new directory under cfg.Experiment.Out. It returns that directory.
func Run(ctx context.Context, cfg config.Config, name string, layout []string, agents []metrics.AgentConfig) (string, error) {
	var jobs []job
	for _, a := range agents {
		for i := 0; i < cfg.Experiment.Games; i++ {
			jobs = append(jobs, job{agent: a, game: i})
		}
	}

	log.Info().Msgf("starting %s experiment with %d agents and %d games...", name, len(agents), len(jobs))

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Experiment.Concurrency)
	for k, j := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			agentCfg := cfg
			agentCfg.Search.Depth = j.agent.Depth
			agentCfg.Search.OutcomeCap = j.agent.OutcomeCap
			agentCfg.HistorySize = j.agent.HistorySize

			game, moves, err := Play(agentCfg, name, layout, j.agent.Seed+uint64(j.game))
			if err != nil {
				return err
			}

			id := k + 1
			gameRecords[k] = metrics.GameRecord{ID: id, Agent: j.agent.ID, GameMetric: game}
			records := make([]metrics.MoveRecord, len(moves))
			for i, m := range moves {
				records[i] = metrics.MoveRecord{Game: id, MoveMetric: m}
			}
			moveRecords[k] = records

			log.Info().Msgf("completed game %d of %d for agent %d", id, len(jobs), j.agent.ID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("experiment %s: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)

	var flat []metrics.MoveRecord
	for _, records := range moveRecords {
		flat = append(flat, records...)
	}
	return store(cfg.Experiment.Out, name, agents, gameRecords, flat)
}

func store(root, name string, agents []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
