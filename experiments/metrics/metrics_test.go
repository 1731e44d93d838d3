package metrics

import (
	"encoding/csv"
	"os"
	"pacman/game"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting one search at a time", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddNode()
		c.AddNode()
		c.AddLeaf()
		c.AddDeath()

		m := c.Complete()
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 2, m.Nodes)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 1, m.Deaths)
		require.False(t, m.Reflex)

		c.Start(2)
		c.SetReflex(true)
		m = c.Complete()
		require.Zero(t, m.Nodes, "Start should reset the counts")
		require.True(t, m.Reflex)
	})

	t.Run("recording nothing with the dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestObserve(t *testing.T) {
	reflex := testutil.ToFloat64(decisionsTotal.WithLabelValues("reflex"))
	cleared := testutil.ToFloat64(gamesTotal.WithLabelValues("cleared"))

	ObserveMove(MoveMetric{SearchMetric: SearchMetric{Reflex: true}})
	ObserveGame(GameMetric{Cleared: true, Lives: 2})

	require.Equal(t, reflex+1, testutil.ToFloat64(decisionsTotal.WithLabelValues("reflex")))
	require.Equal(t, cleared+1, testutil.ToFloat64(gamesTotal.WithLabelValues("cleared")))
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	session := uuid.New()
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Depth: 3, OutcomeCap: 4, HistorySize: 15, Seed: 7}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 1, GameMetric: GameMetric{
		Session:   session,
		Layout:    "small",
		StartTime: start,
		EndTime:   start.Add(time.Second),
		Duration:  time.Second,
		Ticks:     12,
		Score:     120,
		Lives:     3,
		Cleared:   true,
	}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{
		Step:         1,
		Action:       game.Left,
		Score:        10,
		Lives:        3,
		SearchMetric: SearchMetric{Depth: 3, Nodes: 40, Leaves: 27},
	}}}))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	require.Equal(t, [][]string{
		{"id", "depth", "outcome_cap", "history_size", "seed"},
		{"1", "3", "4", "15", "7"},
	}, read("agent_configs.csv"))

	games := read("game_records.csv")
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1", session.String(), "small", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12", "120", "3", "true"}, games[1])

	moves := read("move_records.csv")
	require.Equal(t, []string{"1", "1", "left", "10", "3", "3", "0s", "40", "27", "0", "false"}, moves[1])
}
