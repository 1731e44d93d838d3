package heuristic

import (
	"pacman/game"
	"pacman/memory"
)

// Terms breaks an evaluation down into its additive parts. Objective terms are rewards, danger
// terms are penalties (a negative topology penalty is a bonus).
type Terms struct {
	ScoreDelta float64
	Density    float64
	Gravity    float64
	Hunt       float64
	Explore    float64
	Win        float64

	Revisit   float64
	Proximity float64
	Topology  float64
	Alignment float64

	Terminal bool
}

func (t Terms) Objective() float64 {
	return t.ScoreDelta + t.Density + t.Gravity + t.Hunt + t.Explore + t.Win
}

func (t Terms) Danger() float64 {
	return t.Revisit + t.Proximity + t.Topology + t.Alignment
}

// Evaluator scores leaf belief states. It reads the session's visit counts but never writes them.
type Evaluator struct {
	weights Weights
	visits  *memory.Visits
}

func New(weights Weights, visits *memory.Visits) *Evaluator {
	return &Evaluator{weights: weights, visits: visits}
}

// Evaluate returns objective minus danger for state, reached from parent. uncertain marks states
// lying below an ambiguous outcome.
func (e *Evaluator) Evaluate(state, parent game.BeliefState, uncertain bool) float64 {
	terms := e.Terms(state, parent, uncertain)
	if terms.Terminal {
		return -e.weights.Terminal
	}
	return terms.Objective() - terms.Danger()
}

// Terms computes every evaluation term of state.
func (e *Evaluator) Terms(state, parent game.BeliefState, uncertain bool) Terms {
	if state.Lives() <= 0 {
		return Terms{Terminal: true}
	}

	var t Terms
	t.ScoreDelta = e.scoreDelta(state, parent)
	if state.RemainingItems() == 0 {
		t.Win = e.weights.Win
	}
	local := 0
	t.Density, local = e.density(state)
	if local == 0 {
		t.Gravity = e.gravity(state)
	}
	if !uncertain {
		t.Hunt = e.hunt(state)
	} else if e.visits.Count(state.Agent()) == 0 {
		t.Explore = e.weights.Exploration
	}

	t.Revisit = e.revisit(state)
	t.Proximity = e.proximity(state)
	t.Topology = e.topology(state)
	t.Alignment = e.alignment(state)
	return t
}
