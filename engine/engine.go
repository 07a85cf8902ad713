package engine

import "errors"

// ErrTickLimit is returned when a game is still running after the
// configured number of ticks.
var ErrTickLimit = errors.New("tick limit reached")

type Result struct {
	Winner string // "" if the game did not finish
	Ticks  int    // Non-terminal ticks played
}

type Runner interface {
	// Run ticks the game until it is over or the tick limit is reached
	Run() (Result, error)
}
