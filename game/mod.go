package game

import "errors"

type Status int

const (
	Continue Status = iota
	Terminal
)

func (s Status) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "continue"
}

// ErrNoContenders means neither player could put a card down. The win
// condition is checked before every draw, so reaching it is a bug.
var ErrNoContenders = errors.New("no player can contribute a card")

// Game is a turn based game advanced one step at a time by a driver.
// Any game playable by the engine package implements this interface.
type Game interface {
	// Tick advances the game by one step. Once the game is over it keeps
	// returning Terminal without changing state.
	Tick() (Status, error)
	// Winner returns the name of the winning player, "" while the game runs.
	Winner() string
}
