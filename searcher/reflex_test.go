package searcher

import (
	"pacman/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func at(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func TestReflex(t *testing.T) {
	t.Run("capturing an adjacent frightened adversary", func(t *testing.T) {
		for _, action := range game.Actions {
			state := newState("root", 0)
			state.Position = at(2, 2)
			target := state.Position.Move(action)
			state.Ghosts = []game.Ghost{{Candidates: []game.Position{target}, Fright: 5}}

			got, ok := Reflex(state)

			require.True(t, ok)
			require.Equal(t, action, got)
			require.Less(t, game.Manhattan(state.Position.Move(got), target), game.Manhattan(state.Position, target))
		}
	})

	t.Run("ignoring hostile, ambiguous and distant adversaries", func(t *testing.T) {
		state := newState("root", 0)
		state.Position = at(2, 2)
		state.Ghosts = []game.Ghost{
			{Candidates: []game.Position{at(2, 3)}},
			{Candidates: []game.Position{at(1, 2), at(3, 3)}, Fright: 5},
			{Candidates: []game.Position{at(3, 3)}, Fright: 5},
			{Fright: 5},
		}

		_, ok := Reflex(state)

		require.False(t, ok)
	})

	t.Run("ignoring a target inside a wall", func(t *testing.T) {
		state := newState("root", 0)
		state.Position = at(1, 1)
		state.Ghosts = []game.Ghost{{Candidates: []game.Position{at(0, 1)}, Fright: 5}}

		_, ok := Reflex(state)

		require.False(t, ok)
	})
}

func TestReflexPrecedence(t *testing.T) {
	evaluator := &mockEvaluator{}
	s := New(evaluator, WithMetrics())
	state := newState("root", 0,
		plan(game.Up, newState("treasure", 1e9)),
		plan(game.Right, newState("capture", -1e3)),
	)
	state.Position = at(2, 2)
	state.Ghosts = []game.Ghost{{Candidates: []game.Position{at(2, 3)}, Fright: 3}}

	require.Equal(t, game.Right, s.SelectAction(state), "Capture should override the search preference")
	require.Empty(t, evaluator.calls, "Search should be bypassed")

	action, metric, ok := s.Capture(state)
	require.True(t, ok)
	require.Equal(t, game.Right, action)
	require.True(t, metric.Reflex)
}
