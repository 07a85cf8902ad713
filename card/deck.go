package card

import (
	"errors"
	"fmt"

	"naipe/utils"

	"golang.org/x/exp/rand"
)

var (
	// ErrNotEnoughCards is returned when a deal asks for more cards than
	// the deck holds. The deck is left untouched.
	ErrNotEnoughCards = errors.New("not enough cards")
	ErrInvalidDeal    = errors.New("invalid deal")
)

// Deck is an ordered pile of cards. Cards are added to and dealt from the
// end of the pile, its top.
type Deck struct {
	cards []Card
}

// NewDeck creates a deck made of sets full 52 card sets, in AllCards
// order. sets must be positive.
func NewDeck(sets uint) *Deck {
	if sets == 0 {
		panic("deck needs at least one set of cards")
	}
	all := AllCards()
	cards := make([]Card, 0, len(all)*int(sets))
	for i := uint(0); i < sets; i++ {
		cards = append(cards, all...)
	}
	return &Deck{cards: cards}
}

func NewEmptyDeck() *Deck {
	return &Deck{}
}

// NewDeckFromCards creates a deck holding cards, listed bottom to top.
func NewDeckFromCards(cards ...Card) *Deck {
	return &Deck{cards: utils.Clone(cards)}
}

// Shuffle permutes the deck in place with rng. Use a seeded generator for
// reproducible games.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), d.swap)
}

// ShuffleWithDefaultRand shuffles with the process wide generator.
func (d *Deck) ShuffleWithDefaultRand() {
	rand.Shuffle(len(d.cards), d.swap)
}

func (d *Deck) swap(i, j int) {
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

func (d *Deck) Add(card Card) {
	d.cards = append(d.cards, card)
}

func (d *Deck) Extend(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Empty discards every card in the deck.
func (d *Deck) Empty() {
	d.cards = nil
}

// Cards returns a copy of the deck, bottom to top.
func (d *Deck) Cards() []Card {
	return utils.Clone(d.cards)
}

func (d *Deck) String() string {
	return formatCards(d.cards)
}

// DealCards deals cardsPerHand cards to each of handCount buckets, one
// card per bucket per round, taking from the top of the deck.
func (d *Deck) DealCards(handCount, cardsPerHand int) ([][]Card, error) {
	if err := d.checkDeal(handCount, cardsPerHand); err != nil {
		return nil, err
	}
	buckets := make([][]Card, handCount)
	for i := range buckets {
		buckets[i] = make([]Card, 0, cardsPerHand)
	}
	for round := 0; round < cardsPerHand; round++ {
		for i := range buckets {
			card, _ := utils.Pop(&d.cards)
			buckets[i] = append(buckets[i], card)
		}
	}
	return buckets, nil
}

// DealCardsToHands deals like DealCards, extending each hand in place.
func (d *Deck) DealCardsToHands(hands []*Hand, cardsPerHand int) error {
	buckets, err := d.DealCards(len(hands), cardsPerHand)
	if err != nil {
		return err
	}
	for i, hand := range hands {
		hand.Extend(buckets[i]...)
	}
	return nil
}

// DealAllCards splits the deck evenly over handCount buckets. Cards that
// do not divide evenly stay in the deck.
func (d *Deck) DealAllCards(handCount int) ([][]Card, error) {
	if handCount <= 0 {
		return nil, fmt.Errorf("%w: %d hands", ErrInvalidDeal, handCount)
	}
	if len(d.cards) < handCount {
		return nil, fmt.Errorf("%w: %d cards for %d hands", ErrNotEnoughCards, len(d.cards), handCount)
	}
	return d.DealCards(handCount, len(d.cards)/handCount)
}

// DealAllCardsToHands deals like DealAllCards, extending each hand in place.
func (d *Deck) DealAllCardsToHands(hands []*Hand) error {
	if len(hands) == 0 {
		return fmt.Errorf("%w: no hands", ErrInvalidDeal)
	}
	if len(d.cards) < len(hands) {
		return fmt.Errorf("%w: %d cards for %d hands", ErrNotEnoughCards, len(d.cards), len(hands))
	}
	return d.DealCardsToHands(hands, len(d.cards)/len(hands))
}

func (d *Deck) checkDeal(handCount, cardsPerHand int) error {
	if handCount <= 0 || cardsPerHand < 0 {
		return fmt.Errorf("%w: %d hands of %d cards", ErrInvalidDeal, handCount, cardsPerHand)
	}
	if cardsPerHand > len(d.cards)/handCount {
		return fmt.Errorf("%w: requested %d hands of %d, have %d", ErrNotEnoughCards, handCount, cardsPerHand, len(d.cards))
	}
	return nil
}
