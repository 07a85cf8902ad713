package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type ExperimentConfig struct {
	Name     string
	Games    int
	Seed     uint64
	MaxTicks int
	FaceDown int
}

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type TickRecord struct {
	Game int // GameRecord.ID
	TickMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment under root.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteConfig(config ExperimentConfig) error {
	header := []string{"name", "games", "seed", "max_ticks", "face_down"}
	rows := [][]string{{
		config.Name,
		strconv.Itoa(config.Games),
		strconv.FormatUint(config.Seed, 10),
		strconv.Itoa(config.MaxTicks),
		strconv.Itoa(config.FaceDown),
	}}
	if err := w.write("experiment_config.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write experiment config: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "seed", "winner", "ticks", "wars", "reshuffles", "largest_pot", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.FormatUint(record.Seed, 10),
			record.Winner,
			strconv.Itoa(record.TotalTicks),
			strconv.Itoa(record.Wars),
			strconv.Itoa(record.Reshuffles),
			strconv.Itoa(record.LargestPot),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteTickRecords(records []TickRecord) error {
	header := []string{"game", "tick", "outcome", "winner", "pot", "war_rounds", "player1_cards", "player2_cards"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Tick),
			string(record.Outcome),
			record.Winner,
			strconv.Itoa(record.Pot),
			strconv.Itoa(record.WarRounds),
			strconv.Itoa(record.Player1Cards),
			strconv.Itoa(record.Player2Cards),
		})
	}
	if err := w.write("tick_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write tick records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
