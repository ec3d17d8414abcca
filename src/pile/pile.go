package pile

import (
	"github.com/pkg/errors"

	"github.com/lost-woods/fourseasons/src/cards"
)

// ErrEmptySource is returned when reading or removing from an empty pile.
var ErrEmptySource = errors.New("pile is empty")

type Kind uint8

const (
	Stock Kind = iota
	Waste
	Foundation
	Tableau
	// Hold is a scratch pile used while dealing.
	Hold
)

var kindNames = [...]string{"stock", "waste", "foundation", "tableau", "hold"}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Pile is an ordered stack of cards. Cards are stored bottom-to-top, the last
// element is the top card. Acceptance rules live with the moves; the
// container itself accepts anything.
type Pile struct {
	name  string
	kind  Kind
	suit  cards.Suit
	cards []cards.Card
}

func New(name string, kind Kind) *Pile {
	return &Pile{name: name, kind: kind, cards: make([]cards.Card, 0, 52)}
}

// NewFoundation returns a foundation that builds the given suit.
func NewFoundation(name string, suit cards.Suit) *Pile {
	p := New(name, Foundation)
	p.suit = suit
	return p
}

func (p *Pile) Name() string { return p.name }
func (p *Pile) Kind() Kind   { return p.kind }

// Suit is the designated suit of a foundation. Meaningless for other kinds.
func (p *Pile) Suit() cards.Suit { return p.suit }

func (p *Pile) Empty() bool { return len(p.cards) == 0 }
func (p *Pile) Count() int  { return len(p.cards) }

func (p *Pile) Peek() (cards.Card, error) {
	if len(p.cards) == 0 {
		return cards.Card{}, errors.Wrap(ErrEmptySource, p.name)
	}
	return p.cards[len(p.cards)-1], nil
}

func (p *Pile) Get() (cards.Card, error) {
	if len(p.cards) == 0 {
		return cards.Card{}, errors.Wrap(ErrEmptySource, p.name)
	}
	top := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return top, nil
}

func (p *Pile) Add(c cards.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) TopRank() (cards.Rank, error) {
	c, err := p.Peek()
	return c.Rank, err
}

func (p *Pile) TopSuit() (cards.Suit, error) {
	c, err := p.Peek()
	return c.Suit, err
}

// Cards returns a copy of the pile, bottom card first.
func (p *Pile) Cards() []cards.Card {
	out := make([]cards.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Contains reports whether a card with the same suit and rank is in the pile.
func (p *Pile) Contains(c cards.Card) bool {
	for _, x := range p.cards {
		if x.Same(c) {
			return true
		}
	}
	return false
}
