package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/game"
	"github.com/lost-woods/fourseasons/src/pile"
)

func card(s cards.Suit, r cards.Rank) cards.Card {
	return cards.Card{Suit: s, Rank: r}
}

// stacked returns a full deck whose top cards, in draw order, are top.
// The remaining cards sit underneath in NewDeck order.
func stacked(top ...cards.Card) []cards.Card {
	deck := make([]cards.Card, 0, 52)
	for _, c := range cards.NewDeck() {
		used := false
		for _, t := range top {
			if t.Same(c) {
				used = true
				break
			}
		}
		if !used {
			deck = append(deck, c)
		}
	}
	for i := len(top) - 1; i >= 0; i-- {
		deck = append(deck, top[i])
	}
	return deck
}

// fixtureDeck deals:
//
//	TopCross 10♠, LeftCross 7♣, MiddleCross 6♠, RightCross A♣, BottomCross 2♦
//	HeartsFoundation 5♥ (base rank Five)
//	Stock, top down: 3♣ 6♥ 7♥ 4♦ K♠ Q♠ J♠ 9♠ ...
func fixtureDeck() []cards.Card {
	return stacked(
		card(cards.Spades, 10),
		card(cards.Clubs, 7),
		card(cards.Spades, 6),
		card(cards.Clubs, cards.Ace),
		card(cards.Diamonds, 2),
		card(cards.Clubs, 3),
		card(cards.Hearts, 5),
		card(cards.Hearts, 6),
		card(cards.Hearts, 7),
		card(cards.Diamonds, 4),
	)
}

func newFixture(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Options{Deck: fixtureDeck()})
	require.NoError(t, err)
	return g
}

func requireTop(t *testing.T, p *pile.Pile, want cards.Card) {
	t.Helper()
	got, err := p.Peek()
	require.NoError(t, err, "%s", p.Name())
	require.True(t, want.Same(got), "%s: want %s on top, got %s", p.Name(), want, got)
}

func draw(g *game.Game) bool {
	return g.Submit(game.NewDraw(g.Stock, g.Waste))
}

type snapshot struct {
	piles     [][]cards.Card
	score     int
	cardsLeft int
}

func snap(g *game.Game) snapshot {
	s := snapshot{score: g.Score(), cardsLeft: g.CardsLeft()}
	for _, p := range g.Piles() {
		s.piles = append(s.piles, p.Cards())
	}
	return s
}
