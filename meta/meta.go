// meta/meta.go
package meta

// SETS defines the number of full 52 card sets in a War deck.
const SETS = 1

// PLAYERS defines the number of players in a game of War.
const PLAYERS = 2

// FACE_DOWN_CARDS defines how many cards each player lays face down per war round.
const FACE_DOWN_CARDS = 3

// MAX_TICKS bounds unattended games.
const MAX_TICKS = 100000

// NUM_GAMES defines the default number of games per experiment.
const NUM_GAMES = 100
