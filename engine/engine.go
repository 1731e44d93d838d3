package engine

import (
	"pacman/experiments/metrics"
	"pacman/maze"
	"pacman/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const MaxTicks = 1000

type Option func(e *Engine)

// Engine plays one session of a maze: the agent picks a move and nature picks which of the
// possible outcomes actually happens.
type Engine struct {
	layout   string
	state    *maze.State
	player   agent.Agent
	nature   *rand.Rand
	session  uuid.UUID
	maxTicks int
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.nature = rand.New(rand.NewSource(seed))
	}
}

func WithMaxTicks(ticks int) Option {
	return func(e *Engine) {
		if ticks > 0 {
			e.maxTicks = ticks
		}
	}
}

// WithSession tags the metrics with the id of the agent's memory session.
func WithSession(id uuid.UUID) Option {
	return func(e *Engine) {
		e.session = id
	}
}

func New(layout string, state *maze.State, player agent.Agent, options ...Option) *Engine {
	if state == nil || player == nil {
		panic("engine needs a state and an agent")
	}
	e := &Engine{ // Default values
		layout:   layout,
		state:    state,
		player:   player,
		nature:   rand.New(rand.NewSource(1)),
		session:  uuid.New(),
		maxTicks: MaxTicks,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) State() *maze.State {
	return e.state
}

// Run plays until the session is over or the tick limit is reached.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	startTime := time.Now()
	log.Info().Msgf("session %s starting on %s", e.session, e.layout)

	var moves []metrics.MoveMetric
	tick := 0
	for !e.state.Over() && tick < e.maxTicks {
		tick++

		action, search := e.player.FindMove(e.state)
		next, ok := e.state.Apply(action, e.nature.Float64())
		if !ok {
			log.Warn().Str("session", e.session.String()).Int("tick", tick).Stringer("action", action).Msg("illegal move, agent stays")
		}
		e.state = next

		move := metrics.MoveMetric{
			Step:         tick,
			Action:       action,
			Score:        next.Score(),
			Lives:        next.Lives(),
			SearchMetric: search,
		}
		metrics.ObserveMove(move)
		moves = append(moves, move)
	}

	endTime := time.Now()
	game := metrics.GameMetric{
		Session:   e.session,
		Layout:    e.layout,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  endTime.Sub(startTime),
		Ticks:     tick,
		Score:     e.state.Score(),
		Lives:     e.state.Lives(),
		Cleared:   e.state.RemainingItems() == 0,
	}
	metrics.ObserveGame(game)

	log.Info().Msgf("session %s finished after %d ticks with score %d, lives %d, cleared %t",
		e.session, tick, game.Score, game.Lives, game.Cleared)
	return game, moves
}
