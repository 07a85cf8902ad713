package card

type Rank int

// Ranks are ordered Ace low.
const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// AllRanks returns every rank in ascending order.
func AllRanks() []Rank {
	ranks := make([]Rank, 0, len(rankNames))
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// IsDirectlyAfter reports whether r immediately follows other, e.g. Two
// follows Ace. Nothing comes before Ace.
func (r Rank) IsDirectlyAfter(other Rank) bool {
	return r != Ace && r-1 == other
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}
