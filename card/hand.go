package card

import (
	"iter"
	"strings"

	"naipe/utils"
)

// Hand is a player's ordered pile of cards. The last card pushed is the
// top of the pile and the first one popped.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding cards, listed bottom to top.
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: utils.Clone(cards)}
}

func (h *Hand) Push(card Card) {
	h.cards = append(h.cards, card)
}

func (h *Hand) Extend(cards ...Card) {
	h.cards = append(h.cards, cards...)
}

// Pop removes the top card. ok is false when the hand is empty.
func (h *Hand) Pop() (card Card, ok bool) {
	return utils.Pop(&h.cards)
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the hand, bottom to top.
func (h *Hand) Cards() []Card {
	return utils.Clone(h.cards)
}

// All iterates the hand from bottom to top.
func (h *Hand) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for _, c := range h.cards {
			if !yield(c) {
				return
			}
		}
	}
}

func (h *Hand) String() string {
	return formatCards(h.cards)
}

func formatCards(cards []Card) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}
