package searcher

import "pacman/game"

// Reflex finds a guaranteed capture: a frightened adversary whose only candidate cell is next to
// the agent. The caller plays it without searching.
func Reflex(state game.BeliefState) (game.Action, bool) {
	agent := state.Agent()
	grid := state.Grid()
	for i := 0; i < state.Adversaries(); i++ {
		if state.FrightTimer(i) <= 0 {
			continue
		}
		candidates := state.Candidates(i)
		if len(candidates) != 1 || !grid.IsOpen(candidates[0]) {
			continue
		}
		for _, action := range game.Actions {
			if agent.Move(action) == candidates[0] {
				return action, true
			}
		}
	}
	return game.DefaultAction, false
}
