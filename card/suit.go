package card

type Suit int

const (
	Spade Suit = iota
	Club
	Heart
	Diamond
)

func AllSuits() []Suit {
	return []Suit{Spade, Club, Heart, Diamond}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Club:
		return "♣"
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	}
	return "?"
}
