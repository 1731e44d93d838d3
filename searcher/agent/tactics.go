package agent

import "pacman/game"

// tactical rewards what the next step certainly brings and punishes stepping next to an
// adversary whose position is known for sure.
func (a *selector) tactical(state game.BeliefState, next game.Position) float64 {
	score := 0.0
	switch state.Grid().At(next) {
	case game.Item:
		score += a.weights.ItemStep
	case game.PowerItem:
		score += a.weights.PowerStep
	}
	for _, g := range game.HostileGhosts(state) {
		if len(g.Candidates) == 1 && game.Manhattan(next, g.Candidates[0]) <= 1 {
			score -= a.weights.ThreatStep
		}
	}
	return score
}

// hunting reports whether a known frightened adversary is close enough, with enough fright time
// left, that the agent should be free to double back after it.
func (a *selector) hunting(state game.BeliefState) bool {
	here := state.Agent()
	for i := 0; i < state.Adversaries(); i++ {
		candidates := state.Candidates(i)
		if len(candidates) != 1 || state.FrightTimer(i) <= a.weights.HuntFright {
			continue
		}
		if game.Manhattan(here, candidates[0]) <= a.weights.HuntRange {
			return true
		}
	}
	return false
}
