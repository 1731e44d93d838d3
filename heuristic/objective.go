package heuristic

import (
	"math"
	"pacman/game"
)

func (e *Evaluator) scoreDelta(state, parent game.BeliefState) float64 {
	if parent == nil {
		return 0
	}
	delta := state.Score() - parent.Score()
	if delta <= 0 {
		return 0
	}
	reward := float64(delta) * e.weights.ScorePoint
	if delta >= e.weights.CaptureThreshold {
		reward *= e.weights.CaptureMultiplier
	}
	return reward
}

// density rewards items close to the agent and returns how many lie within the local radius.
func (e *Evaluator) density(state game.BeliefState) (float64, int) {
	grid := state.Grid()
	agent := state.Agent()
	radius := e.weights.LocalRadius

	count := 0
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if abs(dr)+abs(dc) > radius {
				continue
			}
			switch grid.At(game.Position{Row: agent.Row + dr, Col: agent.Col + dc}) {
			case game.Item:
				count++
			case game.PowerItem:
				count += 2
			}
		}
	}

	score := float64(count) * e.weights.LocalItem
	if d, ok := nearestItem(grid, agent, e.weights.NearestItemRange); ok {
		score += e.weights.NearestItem / float64(d+1)
	}
	return score, count
}

// nearestItem searches rings of growing Manhattan distance around p.
func nearestItem(grid game.Grid, p game.Position, limit int) (int, bool) {
	for r := 0; r <= limit; r++ {
		for dr := -r; dr <= r; dr++ {
			dc := r - abs(dr)
			if grid.At(game.Position{Row: p.Row + dr, Col: p.Col + dc}).IsItem() {
				return r, true
			}
			if dc != 0 && grid.At(game.Position{Row: p.Row + dr, Col: p.Col - dc}).IsItem() {
				return r, true
			}
		}
	}
	return 0, false
}

// gravity pulls the agent toward the centroid of the remaining items.
func (e *Evaluator) gravity(state game.BeliefState) float64 {
	items := state.Grid().Items()
	if len(items) == 0 {
		return 0
	}
	var sumR, sumC float64
	for _, p := range items {
		sumR += float64(p.Row)
		sumC += float64(p.Col)
	}
	n := float64(len(items))
	agent := state.Agent()
	dist := math.Abs(sumR/n-float64(agent.Row)) + math.Abs(sumC/n-float64(agent.Col))
	return e.weights.Gravity / (dist + 1)
}

// hunt rewards closing in on frightened adversaries whose position is known and that stay
// frightened long enough to be reached.
func (e *Evaluator) hunt(state game.BeliefState) float64 {
	agent := state.Agent()
	bonus := 0.0
	for i := 0; i < state.Adversaries(); i++ {
		fright := state.FrightTimer(i)
		candidates := state.Candidates(i)
		if fright <= 0 || len(candidates) != 1 {
			continue
		}
		d := game.Manhattan(agent, candidates[0])
		if fright < d+e.weights.HuntBuffer {
			continue
		}
		bonus += e.weights.Hunt / float64(d+1)
	}
	return bonus
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
