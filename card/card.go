// Package card holds the playing card primitives shared by the games:
// ranks, suits, cards, decks and hands.
package card

import "cmp"

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

func New(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

// AllCards returns one full 52 card set, grouped by suit.
func AllCards() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			cards = append(cards, New(suit, rank))
		}
	}
	return cards
}

// Compare orders cards by suit, then by rank.
func (c Card) Compare(other Card) int {
	if n := cmp.Compare(c.Suit, other.Suit); n != 0 {
		return n
	}
	return cmp.Compare(c.Rank, other.Rank)
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// CompareRank orders two cards by rank alone. Cards of the same rank
// compare equal whatever their suits.
func CompareRank(a, b Card) int {
	return cmp.Compare(a.Rank, b.Rank)
}

// SameRank reports whether a and b are equal under CompareRank.
func SameRank(a, b Card) bool {
	return CompareRank(a, b) == 0
}
