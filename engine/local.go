package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"naipe/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pacer is called between ticks. Returning an error stops the game.
type Pacer func() error

type Engine struct {
	Game     game.Game
	maxTicks int
	pacer    Pacer
	logger   zerolog.Logger
}

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

// WithMaxTicks bounds the number of ticks. Zero means unbounded.
func WithMaxTicks(maxTicks int) Option {
	return func(e *Engine) {
		e.maxTicks = maxTicks
	}
}

func WithPacer(pacer Pacer) Option {
	return func(e *Engine) {
		e.pacer = pacer
	}
}

// WithLineInput waits for one line from r after every tick. The content
// is ignored. Once r is exhausted the game runs on without pausing.
func WithLineInput(r io.Reader) Option {
	reader := bufio.NewReader(r)
	eof := false
	return WithPacer(func() error {
		if eof {
			return nil
		}
		_, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			eof = true
			return nil
		}
		return err
	})
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func LocalEngine(g game.Game, options ...Option) *Engine {
	if g == nil {
		panic("engine needs a game")
	}
	e := &Engine{
		Game:   g,
		logger: log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until there's a winner.
func (e *Engine) Run() (Result, error) {
	var result Result
	e.logger.Info().Msg("game started")

	for {
		status, err := e.Game.Tick()
		if err != nil {
			return result, fmt.Errorf("tick %d: %w", result.Ticks+1, err)
		}
		if status == game.Terminal {
			break
		}
		result.Ticks++

		if e.maxTicks > 0 && result.Ticks >= e.maxTicks {
			if e.Game.Winner() != "" {
				break
			}
			e.logger.Warn().Msgf("stopped after %d ticks (no winner yet)", result.Ticks)
			return result, ErrTickLimit
		}
		if e.pacer != nil {
			if err := e.pacer(); err != nil {
				return result, fmt.Errorf("pacer: %w", err)
			}
		}
	}

	result.Winner = e.Game.Winner()
	e.logger.Info().Msgf("game over after %d ticks, winner: %s", result.Ticks, result.Winner)
	return result, nil
}
