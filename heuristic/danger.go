package heuristic

import (
	"math"
	"pacman/game"
)

func (e *Evaluator) revisit(state game.BeliefState) float64 {
	n := float64(e.visits.Count(state.Agent()))
	return n * n * e.weights.Revisit
}

// proximity spreads each hostile adversary's threat evenly over its candidate cells.
func (e *Evaluator) proximity(state game.BeliefState) float64 {
	agent := state.Agent()
	radius := e.weights.DangerRadius
	penalty := 0.0
	for _, g := range game.HostileGhosts(state) {
		mass := 1.0 / float64(len(g.Candidates))
		for _, c := range g.Candidates {
			d := game.Manhattan(agent, c)
			if d >= radius {
				continue
			}
			penalty += math.Pow(float64(radius+1-d), 3) * e.weights.Proximity * mass
		}
	}
	return penalty
}

// topology stands in for missing positional knowledge: dead ends are traps, junctions give options.
// It only applies while some hostile adversary has more than one candidate cell.
func (e *Evaluator) topology(state game.BeliefState) float64 {
	ambiguous := false
	for _, g := range game.HostileGhosts(state) {
		if len(g.Candidates) > 1 {
			ambiguous = true
			break
		}
	}
	if !ambiguous {
		return 0
	}

	switch open := state.Grid().OpenNeighbors(state.Agent()); {
	case open <= 1:
		return e.weights.DeadEnd
	case open == 2:
		return e.weights.Corridor
	default:
		return -e.weights.Junction
	}
}

func (e *Evaluator) alignment(state game.BeliefState) float64 {
	agent := state.Agent()
	penalty := 0.0
	for _, g := range game.HostileGhosts(state) {
		aligned := 0
		for _, c := range g.Candidates {
			if c.Row == agent.Row || c.Col == agent.Col {
				aligned++
			}
		}
		penalty += e.weights.Alignment * float64(aligned) / float64(len(g.Candidates))
	}
	return penalty
}
