package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
)

type Agent interface {
	// FindMove returns the move to play in state and the metrics of the search behind it
	FindMove(state game.BeliefState) (game.Action, metrics.SearchMetric)
}
