package agent

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/memory"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type selector struct {
	searcher *searcher.Searcher
	session  *memory.Session
	weights  Weights
}

// NewSelector returns an agent that adjusts search values against loops and for immediate
// tactics. The session is written on every call, so an agent must not be shared across goroutines.
func NewSelector(s *searcher.Searcher, session *memory.Session, weights Weights) Agent {
	return &selector{searcher: s, session: session, weights: weights}
}

func (a *selector) FindMove(state game.BeliefState) (game.Action, metrics.SearchMetric) {
	if state.Lives() <= 0 {
		return game.DefaultAction, metrics.SearchMetric{}
	}

	here := state.Agent()
	visits := a.session.Visits.Record(here)

	action, metric, captured := a.searcher.Capture(state)
	if !captured {
		action, metric = a.choose(state)
	}
	a.session.History.Record(here, action)

	log.Debug().
		Str("session", a.session.ID.String()).
		Stringer("from", here).
		Stringer("action", action).
		Int("visits", visits).
		Int("streak", a.session.History.Streak()).
		Int("nodes", metric.Nodes).
		Bool("reflex", captured).
		Msg("move selected")
	return action, metric
}

func (a *selector) choose(state game.BeliefState) (game.Action, metrics.SearchMetric) {
	values, metric := a.searcher.Search(state)
	if len(values) == 0 {
		return a.fallback(state), metric
	}

	here := state.Agent()
	threat, ok := game.NearestHostile(state, here)
	if !ok {
		threat = math.MaxInt
	}
	damping := 1.0
	if a.hunting(state) {
		damping = a.weights.HuntDamping
	}

	adjusted := make([]searcher.ActionValue, len(values))
	for i, v := range values {
		next := here.Move(v.Action)
		adjusted[i] = searcher.ActionValue{
			Action: v.Action,
			Value:  v.Value + a.tactical(state, next) + damping*a.antiOscillation(v.Action, next, threat),
		}
	}

	best, _ := a.searcher.Best(adjusted)
	return best.Action, metric
}

// fallback keeps the agent moving when no plan could be scored: first an open direction that
// does not reverse, then any open direction.
func (a *selector) fallback(state game.BeliefState) game.Action {
	if len(state.Plans()) == 0 {
		return game.DefaultAction
	}
	here := state.Agent()
	grid := state.Grid()
	last, hasLast := a.session.History.Last()
	for _, action := range game.Actions {
		if hasLast && action.IsOpposite(last) {
			continue
		}
		if grid.IsOpen(here.Move(action)) {
			return action
		}
	}
	for _, action := range game.Actions {
		if grid.IsOpen(here.Move(action)) {
			return action
		}
	}
	return game.DefaultAction
}
