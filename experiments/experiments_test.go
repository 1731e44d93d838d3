package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"pacman/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var corridor = []string{
	"#######",
	"#P...*#",
	"#######",
}

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Search.Depth = 2
	cfg.Experiment.Games = 3
	cfg.Experiment.Concurrency = 2
	cfg.Experiment.MaxTicks = 20
	cfg.Experiment.Out = t.TempDir()
	return cfg
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestDepthSweep(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Depth = 3

	agents := DepthSweep(cfg)

	require.Len(t, agents, 3)
	for i, a := range agents {
		require.Equal(t, i+1, a.Depth)
		require.Equal(t, i+1, a.ID)
	}
	require.Equal(t, cfg.Search.Depth, Baseline(cfg)[0].Depth)
}

func TestPlay(t *testing.T) {
	cfg := testConfig(t)

	t.Run("clearing a corridor", func(t *testing.T) {
		game, moves, err := Play(cfg, "corridor", corridor, 1)

		require.NoError(t, err)
		require.True(t, game.Cleared)
		require.Len(t, moves, game.Ticks)
	})

	t.Run("failing on a broken layout", func(t *testing.T) {
		_, _, err := Play(cfg, "broken", []string{"#..#"}, 1)
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	t.Run("writing one record per game", func(t *testing.T) {
		cfg := testConfig(t)

		dir, err := Run(context.Background(), cfg, "sweep", corridor, DepthSweep(cfg))

		require.NoError(t, err)
		agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Len(t, agents, 1+2)
		require.Len(t, games, 1+2*3)
		require.Greater(t, len(moves), len(games)-1, "Every game takes at least one move")
		for i, row := range games[1:] {
			require.Equal(t, []string{"true"}, row[len(row)-1:], "Game %d should clear the corridor", i+1)
		}
	})

	t.Run("stopping on a cancelled context", func(t *testing.T) {
		cfg := testConfig(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, cfg, "cancelled", corridor, Baseline(cfg))

		require.ErrorIs(t, err, context.Canceled)
	})
}
