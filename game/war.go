package game

import (
	"fmt"
	"time"

	"naipe/card"
	"naipe/experiments/metrics"
	"naipe/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	Player1 = "Player1"
	Player2 = "Player2"
)

type player struct {
	name    string
	hand    *card.Hand
	capture *card.Deck
}

func newPlayer(name string, hand *card.Hand) *player {
	return &player{name: name, hand: hand, capture: card.NewEmptyDeck()}
}

// lost reports whether the player has nothing left to play.
func (p *player) lost() bool {
	return p.hand.IsEmpty() && p.capture.IsEmpty()
}

func (p *player) cards() int {
	return p.hand.Len() + p.capture.Len()
}

// contribution is the last card a player put into a war pot.
type contribution struct {
	card card.Card
	ok   bool
}

// WarGame is the state of a two player game of War. Each player draws
// from a hand and keeps won cards in a capture pile, which is shuffled
// back into the hand when the hand runs out.
type WarGame struct {
	players   [meta.PLAYERS]*player
	rng       *rand.Rand
	logger    zerolog.Logger
	collector metrics.Collector
	faceDown  int
	ticks     int

	initialHands [meta.PLAYERS]*card.Hand
}

type Option func(g *WarGame)

func WithRand(rng *rand.Rand) Option {
	return func(g *WarGame) {
		g.rng = rng
	}
}

func WithSeed(seed uint64) Option {
	return func(g *WarGame) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *WarGame) {
		g.logger = logger
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(g *WarGame) {
		g.collector = collector
	}
}

// WithFaceDown sets the number of face down cards per player in each war round.
func WithFaceDown(n int) Option {
	return func(g *WarGame) {
		g.faceDown = n
	}
}

// WithHands starts the game from copies of the given hands instead of
// dealing a shuffled deck.
func WithHands(player1, player2 *card.Hand) Option {
	return func(g *WarGame) {
		if player1 == nil || player2 == nil {
			return
		}
		g.initialHands = [meta.PLAYERS]*card.Hand{
			card.NewHand(player1.Cards()...),
			card.NewHand(player2.Cards()...),
		}
	}
}

// NewWarGame shuffles a deck and deals it evenly to both players.
func NewWarGame(options ...Option) (*WarGame, error) {
	g := &WarGame{
		logger:    log.Logger,
		collector: metrics.NewDummyCollector(),
		faceDown:  meta.FACE_DOWN_CARDS,
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if g.faceDown < 0 {
		return nil, fmt.Errorf("face down cards must not be negative, got %d", g.faceDown)
	}

	hands := g.initialHands
	if hands[0] == nil || hands[1] == nil {
		hands = [meta.PLAYERS]*card.Hand{card.NewHand(), card.NewHand()}
		deck := card.NewDeck(meta.SETS)
		deck.Shuffle(g.rng)
		if err := deck.DealAllCardsToHands(hands[:]); err != nil {
			return nil, fmt.Errorf("failed to deal: %w", err)
		}
	}
	g.players = [meta.PLAYERS]*player{
		newPlayer(Player1, hands[0]),
		newPlayer(Player2, hands[1]),
	}
	g.initialHands = [meta.PLAYERS]*card.Hand{}

	g.logger.Debug().Msgf("dealt %d and %d cards", hands[0].Len(), hands[1].Len())
	return g, nil
}

func (g *WarGame) Winner() string {
	p1, p2 := g.players[0], g.players[1]
	switch {
	case p1.lost() && !p2.lost():
		return p2.name
	case p2.lost() && !p1.lost():
		return p1.name
	}
	return ""
}

func (g *WarGame) Player1Won() bool {
	return g.Winner() == Player1
}

func (g *WarGame) Ticks() int {
	return g.ticks
}

// CardCounts returns the number of cards each player holds in hand and
// capture pile combined.
func (g *WarGame) CardCounts() (player1, player2 int) {
	return g.players[0].cards(), g.players[1].cards()
}

// Tick plays one trick. Both players turn over their top card and the
// higher rank takes both. Equal ranks go to war.
func (g *WarGame) Tick() (Status, error) {
	p1, p2 := g.players[0], g.players[1]
	if p1.lost() && p2.lost() {
		return Terminal, ErrNoContenders
	}
	if g.Winner() != "" {
		return Terminal, nil
	}
	g.ticks++

	for _, p := range g.players {
		if err := g.refill(p); err != nil {
			return Continue, err
		}
	}
	c1, _ := p1.hand.Pop()
	c2, _ := p2.hand.Pop()
	g.logger.Debug().Int("tick", g.ticks).Stringer("player1", c1).Stringer("player2", c2).Msg("cards played")

	tick := metrics.TickMetric{Tick: g.ticks, Pot: 2}
	switch card.CompareRank(c1, c2) {
	case 1:
		g.award(p1, c1, c2)
		tick.Outcome, tick.Winner = metrics.Player1Capture, p1.name
	case -1:
		g.award(p2, c2, c1)
		tick.Outcome, tick.Winner = metrics.Player2Capture, p2.name
	default:
		winner, pot, rounds, err := g.war(c1, c2)
		if err != nil {
			return Continue, err
		}
		tick.Outcome, tick.Winner, tick.Pot, tick.WarRounds = metrics.War, winner.name, pot, rounds
	}

	tick.Player1Cards, tick.Player2Cards = g.CardCounts()
	g.collector.AddTick(tick)
	g.logger.Debug().Int("player1", tick.Player1Cards).Int("player2", tick.Player2Cards).Msg("card counts")
	return Continue, nil
}

// war resolves a tie between the two played cards. Each round both players
// lay faceDown cards and then one more that decides the round. A player
// who runs out mid round fights with the last card they laid; a player
// with no card at all in a round loses it. Ties start another round and
// the winner takes the whole pot.
func (g *WarGame) war(c1, c2 card.Card) (*player, int, int, error) {
	pot := []card.Card{c1, c2}
	// stakes tracks who put each pot card in, so an aborted war can hand them back.
	stakes := [meta.PLAYERS][]card.Card{{c1}, {c2}}
	for round := 1; ; round++ {
		g.collector.AddWar()
		g.logger.Debug().Int("round", round).Stringer("rank", c1.Rank).Msg("war")

		var last [meta.PLAYERS]contribution
		// The final draw is the face up card and overrides any face down one.
		for i := 0; i < g.faceDown+1; i++ {
			for pi, p := range g.players {
				c, ok, err := g.draw(p)
				if err != nil {
					g.returnStakes(stakes)
					return nil, 0, 0, err
				}
				if ok {
					pot = append(pot, c)
					stakes[pi] = append(stakes[pi], c)
					last[pi] = contribution{card: c, ok: true}
				}
			}
		}

		var winner *player
		switch a, b := last[0], last[1]; {
		case a.ok && b.ok:
			g.logger.Debug().Stringer("player1", a.card).Stringer("player2", b.card).Msg("war cards")
			switch card.CompareRank(a.card, b.card) {
			case 1:
				winner = g.players[0]
			case -1:
				winner = g.players[1]
			default:
				continue
			}
		case a.ok:
			winner = g.players[0]
		case b.ok:
			winner = g.players[1]
		default:
			g.returnStakes(stakes)
			return nil, 0, 0, fmt.Errorf("%w: war round %d with %d cards in the pot", ErrNoContenders, round, len(pot))
		}

		g.award(winner, pot...)
		g.logger.Debug().Str("winner", winner.name).Int("pot", len(pot)).Int("rounds", round).Msg("war won")
		return winner, len(pot), round, nil
	}
}

// draw pops the player's top card, refilling the hand from the capture
// pile first if needed. ok is false when the player has no cards left.
func (g *WarGame) draw(p *player) (card.Card, bool, error) {
	if err := g.refill(p); err != nil {
		return card.Card{}, false, err
	}
	c, ok := p.hand.Pop()
	return c, ok, nil
}

// refill shuffles the capture pile into an empty hand.
func (g *WarGame) refill(p *player) error {
	if !p.hand.IsEmpty() || p.capture.IsEmpty() {
		return nil
	}
	p.capture.Shuffle(g.rng)
	n := p.capture.Len()
	if err := p.capture.DealAllCardsToHands([]*card.Hand{p.hand}); err != nil {
		return fmt.Errorf("failed to refill %s: %w", p.name, err)
	}
	g.collector.AddReshuffle()
	g.logger.Debug().Str("player", p.name).Int("cards", n).Msg("reshuffled capture pile into hand")
	return nil
}

// returnStakes puts every card a player added to an aborted war back on
// their capture pile.
func (g *WarGame) returnStakes(stakes [meta.PLAYERS][]card.Card) {
	for i, p := range g.players {
		p.capture.Extend(stakes[i]...)
	}
}

func (g *WarGame) award(p *player, cards ...card.Card) {
	p.capture.Extend(cards...)
}
