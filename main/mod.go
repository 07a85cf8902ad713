package main

import (
	"flag"
	"fmt"
	"os"

	"naipe/config"
	"naipe/experiments"

	"github.com/rs/zerolog/log"
)

// Simulates a batch of War games and prints win statistics.
func main() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfg, err := config.ParseSimulate(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.Logger = logger

	summary, _, err := experiments.RunWar(experiments.Config{
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		MaxTicks: cfg.MaxTicks,
		FaceDown: cfg.FaceDown,
		OutDir:   cfg.OutDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	fmt.Printf("games:        %d\n", summary.Games)
	fmt.Printf("player 1 won: %d\n", summary.Player1Wins)
	fmt.Printf("player 2 won: %d\n", summary.Player2Wins)
	fmt.Printf("unfinished:   %d\n", summary.Unfinished)
	fmt.Printf("mean ticks:   %.1f\n", summary.MeanTicks)
	fmt.Printf("wars:         %d\n", summary.Wars)
	fmt.Printf("largest pot:  %d\n", summary.LargestPot)
	if summary.Dir != "" {
		fmt.Printf("records:      %s\n", summary.Dir)
	}
}
