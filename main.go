package main

import (
	"fmt"
	"os"
	"time"

	"naipe/config"
	"naipe/engine"
	"naipe/game"

	"github.com/rs/zerolog/log"
)

// Plays one game of War, advancing a trick each time enter is pressed.
func main() {
	cfg, err := config.ParseWar()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Logger = logger

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Msgf("seed %d", seed)

	g, err := game.NewWarGame(game.WithSeed(seed))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	e := engine.LocalEngine(g, engine.WithLineInput(os.Stdin))
	if _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	if g.Player1Won() {
		fmt.Println("Player 1 Won!")
	} else {
		fmt.Println("Player 2 Won!")
	}
}
