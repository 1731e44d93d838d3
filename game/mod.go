package game

// BeliefState is the agent's view of the world: an exact agent position and, per adversary, the
// set of cells it may occupy. Implementations are immutable; the search only reads them.
type BeliefState interface {
	Agent() Position
	Lives() int
	Score() int
	RemainingItems() int
	Grid() Grid

	// Adversaries returns the number of adversaries, dead or alive.
	Adversaries() int
	// Candidates returns the cells adversary i may occupy. Empty means unknown or dead.
	Candidates(i int) []Position
	// FrightTimer returns the ticks adversary i stays vulnerable, 0 meaning hostile.
	FrightTimer(i int) int

	// Plans returns one plan per legal action, or nil when no action is legal.
	Plans() []Plan
}

// Plan pairs a legal action with every belief state it may lead to.
type Plan struct {
	Action   Action
	Outcomes []BeliefState
}

// Uncertain reports whether the plan's outcome cannot be known in advance.
func (p Plan) Uncertain() bool {
	return len(p.Outcomes) > 1
}
