package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
)

type Option func(s *Searcher)

type Searcher struct {
	depth                 int
	outcomeCap            int
	deathPenalty          float64
	uncertainDeathPenalty float64
	jitter                Jitter
	jitterScale           float64
	evaluator             Evaluator
	metrics               metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithOutcomeCap bounds how many surviving outcomes an AND node expands. 0 expands them all.
func WithOutcomeCap(n int) Option {
	return func(s *Searcher) {
		if n >= 0 {
			s.outcomeCap = n
		}
	}
}

func WithDeathPenalties(certain, uncertain float64) Option {
	return func(s *Searcher) {
		if certain > 0 && uncertain > 0 {
			s.deathPenalty = certain
			s.uncertainDeathPenalty = uncertain
		}
	}
}

func WithJitter(jitter Jitter, scale float64) Option {
	return func(s *Searcher) {
		if jitter != nil {
			s.jitter = jitter
		}
		if scale >= 0 {
			s.jitterScale = scale
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(evaluator Evaluator, options ...Option) *Searcher {
	if evaluator == nil {
		panic("searcher needs an evaluator")
	}
	s := &Searcher{ // Default values
		depth:                 DefaultDepth,
		outcomeCap:            DefaultOutcomeCap,
		deathPenalty:          DeathPenalty,
		uncertainDeathPenalty: UncertainDeathPenalty,
		jitter:                NoJitter,
		jitterScale:           JitterScale,
		evaluator:             evaluator,
		metrics:               metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.uncertainDeathPenalty >= s.deathPenalty {
		panic("uncertain death penalty must be smaller than the certain one")
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

// SelectAction returns the reflex capture if one exists, otherwise the action with the best
// search value. With no legal action it returns game.DefaultAction.
func (s *Searcher) SelectAction(state game.BeliefState) game.Action {
	if action, ok := Reflex(state); ok {
		return action
	}
	values, _ := s.Search(state)
	if best, ok := s.Best(values); ok {
		return best.Action
	}
	return game.DefaultAction
}

// Search scores every legal action of state, in plan order. Actions whose outcome set is empty
// are left out.
func (s *Searcher) Search(state game.BeliefState) ([]ActionValue, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	s.metrics.AddNode()

	var values []ActionValue
	for _, plan := range state.Plans() {
		value, ok := s.worstValue(plan, state, s.depth, false)
		if !ok {
			continue
		}
		values = append(values, ActionValue{Action: plan.Action, Value: value})
	}
	return values, s.metrics.Complete()
}

// Capture wraps Reflex and reports it as a decision that skipped the search.
func (s *Searcher) Capture(state game.BeliefState) (game.Action, metrics.SearchMetric, bool) {
	action, ok := Reflex(state)
	if !ok {
		return action, metrics.SearchMetric{}, false
	}
	s.metrics.Start(0)
	s.metrics.SetReflex(true)
	return action, s.metrics.Complete(), true
}

// Best returns the highest value, breaking ties with jitter and then by order.
func (s *Searcher) Best(values []ActionValue) (ActionValue, bool) {
	best := ActionValue{Action: game.DefaultAction}
	bestScore := math.Inf(-1)
	found := false
	for _, v := range values {
		if score := v.Value + s.perturb(); !found || score > bestScore {
			best, bestScore, found = v, score, true
		}
	}
	return best, found
}

// perturb returns a tie-breaking offset in [0, scale).
func (s *Searcher) perturb() float64 {
	if s.jitterScale == 0 {
		return 0
	}
	return s.jitter.Float64() * s.jitterScale
}

func (s *Searcher) leaf(state, parent game.BeliefState, uncertain bool) float64 {
	s.metrics.AddLeaf()
	return s.evaluator.Evaluate(state, parent, uncertain)
}
