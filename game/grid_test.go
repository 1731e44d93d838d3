package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	grid, err := ParseGrid([]string{
		"#####",
		"#.* #",
		"# # #",
		"#####",
	})
	require.NoError(t, err)

	t.Run("reading cells", func(t *testing.T) {
		require.Equal(t, Item, grid.At(Position{Row: 1, Col: 1}))
		require.Equal(t, PowerItem, grid.At(Position{Row: 1, Col: 2}))
		require.Equal(t, Empty, grid.At(Position{Row: 1, Col: 3}))
		require.Equal(t, Wall, grid.At(Position{Row: 2, Col: 2}))
	})

	t.Run("treating out of bounds as walls", func(t *testing.T) {
		require.Equal(t, Wall, grid.At(Position{Row: -1, Col: 0}), "Row above the grid should be a wall")
		require.Equal(t, Wall, grid.At(Position{Row: 0, Col: 9}), "Column past the grid should be a wall")
		require.False(t, grid.IsOpen(Position{Row: 9, Col: 9}))
	})

	t.Run("counting open neighbors", func(t *testing.T) {
		require.Equal(t, 1, grid.OpenNeighbors(Position{Row: 1, Col: 1}), "Corner cell should be a dead end")
		require.Equal(t, 2, grid.OpenNeighbors(Position{Row: 1, Col: 3}), "Cell should open left and down")
	})

	t.Run("listing items", func(t *testing.T) {
		require.Equal(t, []Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}}, grid.Items())
	})

	t.Run("copying on write", func(t *testing.T) {
		p := Position{Row: 1, Col: 1}
		updated := grid.With(p, Empty)

		require.Equal(t, Empty, updated.At(p), "Copy should hold the new cell")
		require.Equal(t, Item, grid.At(p), "Original grid should not change")
	})

	t.Run("rejecting an empty drawing", func(t *testing.T) {
		_, err := ParseGrid(nil)
		require.Error(t, err)
	})
}

func TestAction(t *testing.T) {
	t.Run("pairing opposites", func(t *testing.T) {
		for _, a := range Actions {
			require.Equal(t, a, a.Opposite().Opposite())
			require.True(t, a.IsOpposite(a.Opposite()))
			require.False(t, a.IsOpposite(a))
		}
	})

	t.Run("moving positions", func(t *testing.T) {
		p := Position{Row: 2, Col: 2}
		require.Equal(t, Position{Row: 1, Col: 2}, p.Move(Up))
		require.Equal(t, Position{Row: 3, Col: 2}, p.Move(Down))
		require.Equal(t, Position{Row: 2, Col: 1}, p.Move(Left))
		require.Equal(t, Position{Row: 2, Col: 3}, p.Move(Right))
	})

	t.Run("standing still on an unknown action", func(t *testing.T) {
		p := Position{Row: 2, Col: 2}
		unknown := Action(9)

		require.Equal(t, p, p.Move(unknown))
		require.Equal(t, p, p.Move(Action(-1)))
		require.Equal(t, "unknown", unknown.String())
	})

	t.Run("parsing names", func(t *testing.T) {
		a, ok := ParseAction("left")
		require.True(t, ok)
		require.Equal(t, Left, a)

		_, ok = ParseAction("jump")
		require.False(t, ok)
	})
}

// frozen is a belief state with no legal action.
type frozen struct {
	Snapshot
}

func (f *frozen) Plans() []Plan { return nil }

func TestNearestHostile(t *testing.T) {
	s := &frozen{Snapshot{
		Ghosts: []Ghost{
			{Candidates: []Position{{Row: 0, Col: 1}}, Fright: 5},
			{Candidates: []Position{{Row: 0, Col: 4}, {Row: 0, Col: 3}}},
			{},
		},
	}}

	t.Run("skipping frightened and unknown adversaries", func(t *testing.T) {
		d, ok := NearestHostile(s, Position{})
		require.True(t, ok)
		require.Equal(t, 3, d, "Should use the closest candidate of the hostile adversary")
	})

	t.Run("keeping only hostile adversaries with candidates", func(t *testing.T) {
		hostile := HostileGhosts(s)

		require.Len(t, hostile, 1)
		require.True(t, hostile[0].Hostile())
		require.Equal(t, s.Ghosts[1].Candidates, hostile[0].Candidates)
	})

	t.Run("reporting no threat", func(t *testing.T) {
		_, ok := NearestHostile(&frozen{}, Position{})
		require.False(t, ok)
	})
}
