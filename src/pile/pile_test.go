package pile_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/pile"
)

func TestPile_EmptyReads(t *testing.T) {
	p := pile.New("Waste", pile.Waste)

	assert.True(t, p.Empty())
	assert.Equal(t, 0, p.Count())

	_, err := p.Peek()
	assert.True(t, errors.Is(err, pile.ErrEmptySource))
	_, err = p.Get()
	assert.True(t, errors.Is(err, pile.ErrEmptySource))
	_, err = p.TopRank()
	assert.True(t, errors.Is(err, pile.ErrEmptySource))
	_, err = p.TopSuit()
	assert.True(t, errors.Is(err, pile.ErrEmptySource))
	assert.Contains(t, err.Error(), "Waste")
}

func TestPile_LastInFirstOut(t *testing.T) {
	p := pile.New("LeftCross", pile.Tableau)
	a := cards.Card{Suit: cards.Clubs, Rank: 4}
	b := cards.Card{Suit: cards.Spades, Rank: 3}

	p.Add(a)
	p.Add(b)
	require.Equal(t, 2, p.Count())

	top, err := p.Peek()
	require.NoError(t, err)
	assert.Equal(t, b, top)
	assert.Equal(t, 2, p.Count(), "peek must not remove")

	rank, _ := p.TopRank()
	suit, _ := p.TopSuit()
	assert.Equal(t, cards.Rank(3), rank)
	assert.Equal(t, cards.Spades, suit)

	got, err := p.Get()
	require.NoError(t, err)
	assert.Equal(t, b, got)
	got, err = p.Get()
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.True(t, p.Empty())
}

func TestPile_CardsIsACopy(t *testing.T) {
	p := pile.New("Stock", pile.Stock)
	for _, c := range cards.NewDeck()[:3] {
		p.Add(c)
	}

	cs := p.Cards()
	cs[0].Rank = cards.King

	assert.Equal(t, cards.Ace, p.Cards()[0].Rank)
	assert.True(t, p.Contains(cards.Card{Suit: cards.Clubs, Rank: 3, FaceUp: true}))
	assert.False(t, p.Contains(cards.Card{Suit: cards.Clubs, Rank: 4}))
}

func TestFoundation_CarriesSuit(t *testing.T) {
	f := pile.NewFoundation("HeartsFoundation", cards.Hearts)
	assert.Equal(t, pile.Foundation, f.Kind())
	assert.Equal(t, cards.Hearts, f.Suit())
	assert.Equal(t, "HeartsFoundation", f.Name())
	assert.Equal(t, "foundation", f.Kind().String())
}
