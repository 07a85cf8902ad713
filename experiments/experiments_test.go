package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"naipe/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunWar(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("summarises seeded games", func(t *testing.T) {
		summary, records, err := RunWar(Config{Games: 5, Seed: 100, Logger: &logger})

		require.NoError(t, err)
		require.Len(t, records, 5)
		require.Equal(t, 5, summary.Games)
		require.Equal(t, 5, summary.Player1Wins+summary.Player2Wins+summary.Unfinished)
		require.Zero(t, summary.Unfinished)
		require.Positive(t, summary.MeanTicks)
		require.Empty(t, summary.Dir)
		for i, r := range records {
			require.Equal(t, i+1, r.ID)
			require.Equal(t, uint64(100+i), r.Seed)
			require.Contains(t, []string{game.Player1, game.Player2}, r.Winner)
			require.GreaterOrEqual(t, summary.LargestPot, r.LargestPot)
		}
	})

	t.Run("is reproducible", func(t *testing.T) {
		_, a, err := RunWar(Config{Games: 3, Seed: 7, Logger: &logger})
		require.NoError(t, err)
		_, b, err := RunWar(Config{Games: 3, Seed: 7, Logger: &logger})
		require.NoError(t, err)

		for i := range a {
			require.Equal(t, a[i].Winner, b[i].Winner)
			require.Equal(t, a[i].TotalTicks, b[i].TotalTicks)
			require.Equal(t, a[i].Wars, b[i].Wars)
		}
	})

	t.Run("tick limit leaves games unfinished", func(t *testing.T) {
		summary, records, err := RunWar(Config{Games: 2, Seed: 1, MaxTicks: 1, Logger: &logger})

		require.NoError(t, err)
		require.Equal(t, 2, summary.Unfinished)
		require.Equal(t, "", records[0].Winner)
		require.Equal(t, 1, records[0].TotalTicks)
	})

	t.Run("writes csv records", func(t *testing.T) {
		summary, records, err := RunWar(Config{Name: "smoke", Games: 2, Seed: 3, OutDir: t.TempDir(), Logger: &logger})

		require.NoError(t, err)
		require.NotEmpty(t, summary.Dir)

		config := readCSV(t, filepath.Join(summary.Dir, "experiment_config.csv"))
		require.Equal(t, []string{"smoke", "2", "3", "100000", "3"}, config[1])

		games := readCSV(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.Len(t, games, 3)
		require.Equal(t, "id", games[0][0])

		ticks := readCSV(t, filepath.Join(summary.Dir, "tick_records.csv"))
		require.Len(t, ticks, 1+records[0].TotalTicks+records[1].TotalTicks)
	})
}
