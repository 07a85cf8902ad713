package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHand(t *testing.T) {
	t.Run("pops the last pushed card", func(t *testing.T) {
		hand := NewHand(New(Spade, Ace))
		hand.Push(New(Heart, Two))
		hand.Extend(New(Club, Three), New(Diamond, Four))

		got, ok := hand.Pop()

		require.True(t, ok)
		require.Equal(t, New(Diamond, Four), got)
		require.Equal(t, 3, hand.Len())
	})

	t.Run("pop on empty hand", func(t *testing.T) {
		hand := NewHand()

		_, ok := hand.Pop()

		require.False(t, ok)
		require.True(t, hand.IsEmpty())
	})

	t.Run("does not alias the caller's slice", func(t *testing.T) {
		cards := []Card{New(Spade, Ace), New(Spade, Two)}
		hand := NewHand(cards...)
		hand.Pop()

		require.Equal(t, New(Spade, Two), cards[1])
	})

	t.Run("iterates bottom to top", func(t *testing.T) {
		hand := NewHand(New(Spade, Ace), New(Heart, Ten))

		var got []Card
		for c := range hand.All() {
			got = append(got, c)
		}

		require.Equal(t, hand.Cards(), got)
		require.Equal(t, "[A♠ 10♥]", hand.String())
	})
}
