package engine

import (
	"pacman/game"
	"pacman/heuristic"
	"pacman/maze"
	"pacman/memory"
	"pacman/searcher"
	"pacman/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

func newAgent(seed uint64) (agent.Agent, *memory.Session) {
	session := memory.NewSession(memory.DefaultHistorySize)
	s := searcher.New(
		heuristic.New(heuristic.DefaultWeights(), session.Visits),
		searcher.WithJitter(searcher.NewJitter(seed), searcher.JitterScale),
		searcher.WithMetrics(),
	)
	return agent.NewSelector(s, session, agent.DefaultWeights()), session
}

func newState(t *testing.T, layout ...string) *maze.State {
	t.Helper()
	state, err := maze.Parse(layout, maze.DefaultRules())
	require.NoError(t, err)
	return state
}

func TestRun(t *testing.T) {
	t.Run("clearing a corridor", func(t *testing.T) {
		player, session := newAgent(1)
		state := newState(t,
			"######",
			"#P...#",
			"######",
		)
		e := New("corridor", state, player, WithSession(session.ID), WithMaxTicks(50))

		result, moves := e.Run()

		require.True(t, result.Cleared)
		require.Equal(t, 30, result.Score)
		require.Equal(t, session.ID, result.Session)
		require.Equal(t, "corridor", result.Layout)
		require.Len(t, moves, result.Ticks)
		require.Equal(t, result.Score, moves[len(moves)-1].Score)
		require.True(t, e.State().Over())
	})

	t.Run("stopping at the tick limit", func(t *testing.T) {
		player, _ := newAgent(1)
		state := newState(t,
			"########",
			"#P.....#",
			"########",
		)

		result, moves := New("corridor", state, player, WithMaxTicks(1)).Run()

		require.Equal(t, 1, result.Ticks)
		require.Len(t, moves, 1)
		require.False(t, result.Cleared)
	})

	t.Run("replaying the same session from the same seeds", func(t *testing.T) {
		layout, err := maze.Layout("small")
		require.NoError(t, err)

		play := func() []game.Action {
			player, _ := newAgent(3)
			state, err := maze.Parse(layout, maze.DefaultRules())
			require.NoError(t, err)
			_, moves := New("small", state, player, WithSeed(9), WithMaxTicks(40)).Run()
			actions := make([]game.Action, len(moves))
			for i, m := range moves {
				actions[i] = m.Action
			}
			return actions
		}

		require.Equal(t, play(), play())
	})

	t.Run("recording search metrics per move", func(t *testing.T) {
		player, _ := newAgent(1)
		state := newState(t,
			"######",
			"#P...#",
			"######",
		)

		_, moves := New("corridor", state, player, WithMaxTicks(1)).Run()

		require.Equal(t, searcher.DefaultDepth, moves[0].Depth)
		require.Positive(t, moves[0].Nodes)
		require.Positive(t, moves[0].Leaves)
		require.Equal(t, 1, moves[0].Step)
	})
}
