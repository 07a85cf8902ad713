package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	err = w.WriteGameRecords([]GameRecord{{
		ID:   1,
		Seed: 42,
		GameMetric: GameMetric{
			Winner:     "Player2",
			StartTime:  start,
			EndTime:    start.Add(time.Second),
			Duration:   time.Second,
			TotalTicks: 300,
			Wars:       12,
			Reshuffles: 9,
			LargestPot: 10,
		},
	}})
	require.NoError(t, err)

	err = w.WriteTickRecords([]TickRecord{{Game: 1, TickMetric: TickMetric{
		Tick: 1, Outcome: War, Winner: "Player2", Pot: 10, WarRounds: 1, Player1Cards: 21, Player2Cards: 31,
	}}})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "42", "Player2", "300", "12", "9", "10",
		"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])

	g, err := os.Open(filepath.Join(w.Dir(), "tick_records.csv"))
	require.NoError(t, err)
	defer g.Close()
	rows, err = csv.NewReader(g).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"1", "1", "war", "Player2", "10", "1", "21", "31"}, rows[1])
}
