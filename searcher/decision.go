package searcher

import (
	"math"
	"pacman/game"
)

// bestValue is the OR node: the agent picks the action whose worst outcome is best.
func (s *Searcher) bestValue(state, parent game.BeliefState, depth int, uncertain bool) float64 {
	s.metrics.AddNode()
	if depth <= 0 {
		return s.leaf(state, parent, uncertain)
	}

	best := 0.0
	bestScore := math.Inf(-1)
	found := false
	for _, plan := range state.Plans() {
		value, ok := s.worstValue(plan, state, depth, uncertain)
		if !ok {
			continue
		}
		if score := value + s.perturb(); !found || score > bestScore {
			best, bestScore, found = value, score, true
		}
	}

	if !found { // No legal action or every outcome set was empty
		return s.leaf(state, parent, uncertain)
	}
	return best
}
