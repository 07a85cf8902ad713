package experiments

import (
	"errors"
	"fmt"

	"naipe/engine"
	"naipe/experiments/metrics"
	"naipe/game"
	"naipe/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Name     string
	Games    int
	Seed     uint64 // Seed of the first game, game i uses Seed+i
	MaxTicks int
	FaceDown int    // 0 means meta.FACE_DOWN_CARDS
	OutDir   string // "" skips writing records
	Logger   *zerolog.Logger
}

type Summary struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Unfinished  int
	MeanTicks   float64
	Wars        int
	LargestPot  int
	Dir         string // Where records were written
}

// RunWar plays cfg.Games seeded games of War unattended and records each
// game and tick.
func RunWar(cfg Config) (Summary, []metrics.GameRecord, error) {
	if cfg.Name == "" {
		cfg.Name = "war"
	}
	if cfg.Games <= 0 {
		cfg.Games = meta.NUM_GAMES
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = meta.MAX_TICKS
	}
	if cfg.FaceDown <= 0 {
		cfg.FaceDown = meta.FACE_DOWN_CARDS
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	summary := Summary{Games: cfg.Games}
	gameRecords := []metrics.GameRecord{}
	tickRecords := []metrics.TickRecord{}
	totalTicks := 0

	logger.Info().Msgf("starting %s experiment with %d games...", cfg.Name, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		id := i + 1
		seed := cfg.Seed + uint64(i)
		gameMetric, tickMetrics, err := runGame(seed, cfg)
		if err != nil {
			return summary, gameRecords, fmt.Errorf("game %d (seed %d): %w", id, seed, err)
		}

		gameRecords = append(gameRecords, metrics.GameRecord{ID: id, Seed: seed, GameMetric: gameMetric})
		for _, tm := range tickMetrics {
			tickRecords = append(tickRecords, metrics.TickRecord{Game: id, TickMetric: tm})
		}

		switch gameMetric.Winner {
		case game.Player1:
			summary.Player1Wins++
		case game.Player2:
			summary.Player2Wins++
		default:
			summary.Unfinished++
		}
		totalTicks += gameMetric.TotalTicks
		summary.Wars += gameMetric.Wars
		summary.LargestPot = max(summary.LargestPot, gameMetric.LargestPot)

		logger.Debug().Msgf("completed game %d of %d with winner: %s", id, cfg.Games, gameMetric.Winner)
	}
	summary.MeanTicks = float64(totalTicks) / float64(cfg.Games)

	logger.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutDir == "" {
		return summary, gameRecords, nil
	}
	dir, err := writeRecords(cfg, gameRecords, tickRecords)
	if err != nil {
		return summary, gameRecords, err
	}
	summary.Dir = dir
	logger.Info().Msgf("stored records in %s", dir)
	return summary, gameRecords, nil
}

// runGame plays a single game to completion or the tick limit.
func runGame(seed uint64, cfg Config) (metrics.GameMetric, []metrics.TickMetric, error) {
	collector := metrics.NewCollector()
	g, err := game.NewWarGame(
		game.WithSeed(seed),
		game.WithFaceDown(cfg.FaceDown),
		game.WithCollector(collector),
		game.WithLogger(zerolog.Nop()),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	collector.Start()
	e := engine.LocalEngine(g, engine.WithMaxTicks(cfg.MaxTicks), engine.WithLogger(zerolog.Nop()))
	result, err := e.Run()
	if err != nil && !errors.Is(err, engine.ErrTickLimit) {
		return metrics.GameMetric{}, nil, err
	}

	return collector.Complete(result.Winner), collector.TickMetrics(), nil
}

func writeRecords(cfg Config, gameRecords []metrics.GameRecord, tickRecords []metrics.TickRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteConfig(metrics.ExperimentConfig{
		Name:     cfg.Name,
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		MaxTicks: cfg.MaxTicks,
		FaceDown: cfg.FaceDown,
	})
	if err != nil {
		return "", err
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}

	if err := writer.WriteTickRecords(tickRecords); err != nil {
		return "", err
	}
	return writer.Dir(), nil
}
