package experiments

import (
	"connect4/experiments/metrics"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallExperiment() Experiment {
	shallow := metrics.AgentConfig{ID: 1, Depth: 1, Prune: true, Goroutines: 1}
	deeper := metrics.AgentConfig{ID: 2, Depth: 2, Prune: false, Goroutines: 2}
	return Experiment{
		Name:     "small",
		Configs:  []metrics.AgentConfig{shallow, deeper},
		MatchUps: [][2]metrics.AgentConfig{{shallow, deeper}, {deeper, shallow}},
		NumGames: 2,
		Width:    5,
		Height:   4,
		Seed:     11,
	}
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

func TestRun(t *testing.T) {
	records, err := Run(context.Background(), smallExperiment())

	require.NoError(t, err)
	require.Len(t, records.Games, 4, "Two matchups of two games should be recorded")
	moves := 0
	ids := map[string]bool{}
	for _, game := range records.Games {
		require.NotEmpty(t, game.ID)
		require.False(t, ids[game.ID], "Game IDs should be unique")
		ids[game.ID] = true
		moves += game.TotalMoves
	}
	require.Len(t, records.Moves, moves, "Every move should be recorded")
	require.Equal(t, 1, records.Games[0].Agent1)
	require.Equal(t, 2, records.Games[0].Agent2)
}

func TestRunAndWrite(t *testing.T) {
	root := t.TempDir()

	dir, err := RunAndWrite(context.Background(), smallExperiment(), root)

	require.NoError(t, err)
	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Equal(t, []string{"id", "depth", "prune", "goroutines"}, configs[0])
	require.Equal(t, []string{"2", "2", "false", "2"}, configs[2])

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5, "Header plus four games")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 4)
	require.Equal(t, "game", moves[0][0])
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, smallExperiment())

	require.ErrorIs(t, err, context.Canceled)
}

func TestByName(t *testing.T) {
	ex, err := ByName("pruning", 3, 1)
	require.NoError(t, err)
	require.Equal(t, "pruning", ex.Name)
	require.Equal(t, 3, ex.NumGames)
	for _, matchUp := range ex.MatchUps {
		require.Equal(t, matchUp[0].Depth, matchUp[1].Depth, "Pruning matchups should compare equal depths")
		require.NotEqual(t, matchUp[0].Prune, matchUp[1].Prune)
	}

	ex, err = ByName("depth", 1, 1)
	require.NoError(t, err)
	require.Len(t, ex.MatchUps, 2*(len(ex.Configs)-1))

	_, err = ByName("nope", 1, 1)
	require.Error(t, err)
}
