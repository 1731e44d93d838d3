package agent

import "pacman/game"

// antiOscillation scores action against the recent history. threat is the distance to the
// nearest hostile candidate cell from the agent's current position.
func (a *selector) antiOscillation(action game.Action, next game.Position, threat int) float64 {
	w := a.weights
	history := a.session.History
	score := 0.0

	if seen := history.Occurrences(next); seen > 0 {
		score -= float64(seen) * w.Revisit
		if seen >= 2 {
			score -= w.Loop
		}
	}

	last, hasLast := history.Last()
	if !hasLast {
		return score
	}

	switch {
	case action == last:
		score += w.Straight
	case action.IsOpposite(last):
		if threat > w.UnsafeDistance {
			score -= w.Reversal
		} else {
			score -= w.EscapeReversal
		}
	default:
		score += w.Turn
	}

	// A then B then A again
	if second, ok := history.SecondLast(); ok && action == second && last.IsOpposite(second) {
		score -= w.Oscillation
	}
	return score
}
