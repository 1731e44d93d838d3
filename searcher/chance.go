package searcher

import (
	"math"
	"pacman/game"
)

// worstValue is the AND node: nature resolves the action to its worst outcome, never to an
// average. Returns false for an empty outcome set, which makes the action unusable.
func (s *Searcher) worstValue(plan game.Plan, parent game.BeliefState, depth int, uncertain bool) (float64, bool) {
	if len(plan.Outcomes) == 0 {
		return 0, false
	}
	s.metrics.AddNode()

	uncertain = uncertain || plan.Uncertain()

	worst := math.Inf(1)
	expanded := 0
	for _, outcome := range plan.Outcomes {
		var value float64
		if lostLife(outcome, parent) {
			s.metrics.AddDeath()
			value = -s.deathCost(uncertain)
		} else {
			if s.outcomeCap > 0 && expanded >= s.outcomeCap {
				continue
			}
			expanded++
			value = s.bestValue(outcome, parent, depth-1, uncertain)
		}
		if value < worst {
			worst = value
		}
	}
	return worst, true
}

func (s *Searcher) deathCost(uncertain bool) float64 {
	if uncertain {
		return s.uncertainDeathPenalty
	}
	return s.deathPenalty
}
