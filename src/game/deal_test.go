package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/game"
)

func TestNew_FreshGameLayout(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		g, err := game.New(game.Options{Seed: seed})
		require.NoError(t, err)

		assert.Equal(t, 46, g.CardsLeft(), "seed %d", seed)
		assert.Equal(t, 46, g.Stock.Count(), "seed %d", seed)
		assert.Equal(t, 1, g.Score(), "seed %d", seed)
		assert.True(t, g.Waste.Empty(), "seed %d", seed)
		assert.Equal(t, 0, g.History().Len(), "seed %d", seed)
		assert.Equal(t, 52, g.TotalCards(), "seed %d", seed)

		for _, col := range g.Tableau {
			assert.Equal(t, 1, col.Count(), "seed %d %s", seed, col.Name())
		}

		hearts := g.Foundations[cards.Hearts]
		require.Equal(t, 1, hearts.Count(), "seed %d", seed)
		base, _ := hearts.Peek()
		assert.Equal(t, cards.Hearts, base.Suit)
		assert.Equal(t, g.BaseRank(), base.Rank)
		assert.True(t, base.FaceUp)

		for _, s := range []cards.Suit{cards.Clubs, cards.Diamonds, cards.Spades} {
			assert.True(t, g.Foundations[s].Empty(), "seed %d %s", seed, s)
		}
		for _, c := range g.Stock.Cards() {
			assert.False(t, c.FaceUp, "seed %d stock card %s face up", seed, c)
		}
	}
}

func TestNew_SameSeedSameDeal(t *testing.T) {
	a, err := game.New(game.Options{Seed: 117})
	require.NoError(t, err)
	b, err := game.New(game.Options{Seed: 117})
	require.NoError(t, err)

	assert.Equal(t, snap(a), snap(b))
	assert.Equal(t, a.BaseRank(), b.BaseRank())
	assert.Equal(t, uint64(117), a.Seed())
	assert.NotEqual(t, a.ID(), b.ID(), "sessions get their own id")

	c, err := game.New(game.Options{Seed: 118})
	require.NoError(t, err)
	assert.NotEqual(t, snap(a).piles, snap(c).piles)
}

func TestNew_FixtureDeal(t *testing.T) {
	g := newFixture(t)

	requireTop(t, g.Pile(game.TopCross), card(cards.Spades, 10))
	requireTop(t, g.Pile(game.LeftCross), card(cards.Clubs, 7))
	requireTop(t, g.Pile(game.MiddleCross), card(cards.Spades, 6))
	requireTop(t, g.Pile(game.RightCross), card(cards.Clubs, cards.Ace))
	requireTop(t, g.Pile(game.BottomCross), card(cards.Diamonds, 2))
	requireTop(t, g.Pile(game.HeartsFoundation), card(cards.Hearts, 5))
	assert.Equal(t, cards.Rank(5), g.BaseRank())

	// The skipped club goes back on top, ahead of the cards dealt after the base.
	stock := g.Stock.Cards()
	want := []cards.Card{
		card(cards.Clubs, 3),
		card(cards.Hearts, 6),
		card(cards.Hearts, 7),
		card(cards.Diamonds, 4),
		card(cards.Spades, cards.King),
	}
	for i, w := range want {
		got := stock[len(stock)-1-i]
		assert.True(t, w.Same(got), "stock[%d] from top: want %s got %s", i, w, got)
	}
}

func TestNew_SkippedCardsKeepTheirOrder(t *testing.T) {
	g, err := game.New(game.Options{Deck: stacked(
		card(cards.Spades, 2),
		card(cards.Spades, 3),
		card(cards.Spades, 4),
		card(cards.Spades, 5),
		card(cards.Spades, 6),
		card(cards.Clubs, 9),
		card(cards.Diamonds, cards.Queen),
		card(cards.Spades, cards.Ace),
		card(cards.Hearts, cards.Jack),
		card(cards.Clubs, 2),
	)})
	require.NoError(t, err)

	assert.Equal(t, cards.Jack, g.BaseRank())
	assert.Equal(t, 46, g.CardsLeft())

	stock := g.Stock.Cards()
	want := []cards.Card{
		card(cards.Clubs, 9),
		card(cards.Diamonds, cards.Queen),
		card(cards.Spades, cards.Ace),
		card(cards.Clubs, 2),
	}
	for i, w := range want {
		got := stock[len(stock)-1-i]
		assert.True(t, w.Same(got), "stock[%d] from top: want %s got %s", i, w, got)
	}
}

func TestNew_RejectsBadDecks(t *testing.T) {
	deck := cards.NewDeck()

	_, err := game.New(game.Options{Deck: deck[:51]})
	assert.Error(t, err)

	dup := append([]cards.Card{}, deck...)
	dup[0] = dup[1]
	_, err = game.New(game.Options{Deck: dup})
	assert.Error(t, err)

	bad := append([]cards.Card{}, deck...)
	bad[0].Rank = 0
	_, err = game.New(game.Options{Deck: bad})
	assert.Error(t, err)
}

func TestNew_DoesNotMutateSuppliedDeck(t *testing.T) {
	deck := fixtureDeck()
	before := append([]cards.Card{}, deck...)

	_, err := game.New(game.Options{Deck: deck})
	require.NoError(t, err)
	assert.Equal(t, before, deck)
}
