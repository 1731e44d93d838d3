package searcher

import (
	"pacman/game"

	"golang.org/x/exp/rand"
)

// Evaluator scores a leaf belief state reached from parent. uncertain is set once any ancestor
// outcome set held more than one state.
type Evaluator interface {
	Evaluate(state, parent game.BeliefState, uncertain bool) float64
}

// Jitter is the only source of randomness in a decision. It only ever breaks near-ties.
type Jitter interface {
	Float64() float64
}

type noJitter struct{}

func (noJitter) Float64() float64 { return 0 }

// NoJitter makes every decision a pure function of its inputs.
var NoJitter Jitter = noJitter{}

// NewJitter returns a reproducible jitter source.
func NewJitter(seed uint64) Jitter {
	return rand.New(rand.NewSource(seed))
}

// ActionValue is the search value of one legal action at the root.
type ActionValue struct {
	Action game.Action
	Value  float64
}

// lostLife reports whether the outcome costs the agent a life.
func lostLife(outcome, parent game.BeliefState) bool {
	return outcome.Lives() <= 0 || outcome.Lives() < parent.Lives()
}
