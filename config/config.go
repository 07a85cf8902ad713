// Package config loads runtime settings for the binaries from the
// environment, with flag overrides where a binary takes flags.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"naipe/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// War holds the interactive game settings.
type War struct {
	LogLevel string `env:"WAR_LOG_LEVEL" envDefault:"warn"`
	Seed     uint64 `env:"WAR_SEED"` // 0 picks a time based seed
}

// Simulate holds batch simulation settings.
type Simulate struct {
	Games    int    `env:"WAR_SIM_GAMES"     envDefault:"100"`
	Seed     uint64 `env:"WAR_SIM_SEED"      envDefault:"1"`
	MaxTicks int    `env:"WAR_SIM_MAX_TICKS" envDefault:"100000"`
	FaceDown int    `env:"WAR_SIM_FACE_DOWN" envDefault:"3"`
	OutDir   string `env:"WAR_SIM_OUT_DIR"`
	LogLevel string `env:"WAR_LOG_LEVEL"     envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func ParseWar() (War, error) {
	var cfg War
	if err := ParseEnv(&cfg); err != nil {
		return War{}, err
	}
	return cfg, nil
}

// ParseSimulate parses the environment, then flags into a Simulate config.
func ParseSimulate(fs *flag.FlagSet, args []string) (Simulate, error) {
	var cfg Simulate
	if err := ParseEnv(&cfg); err != nil {
		return Simulate{}, err
	}

	fs.IntVar(&cfg.Games, "games", cfg.Games, "number of games to simulate")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the first game, incremented per game")
	fs.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "ticks before a game is abandoned")
	fs.IntVar(&cfg.FaceDown, "face-down", cfg.FaceDown, "face down cards per player in each war round")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for csv records, empty to skip")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level")
	if err := fs.Parse(args); err != nil {
		return Simulate{}, err
	}
	if cfg.Games <= 0 {
		return Simulate{}, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.FaceDown <= 0 {
		return Simulate{}, fmt.Errorf("face down cards must be positive, got %d", cfg.FaceDown)
	}
	if cfg.MaxTicks <= 0 {
		cfg.MaxTicks = meta.MAX_TICKS
	}
	return cfg, nil
}

// NewLogger returns a human readable logger writing to w at the given level.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}
