package cards

import "fmt"

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in foundation order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) Valid() bool { return s <= Spades }

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Rank runs from Ace (1) to King (13). The zero value means "no rank".
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

func (r Rank) Valid() bool { return r >= Ace && r <= King }

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Next returns the rank that follows r, wrapping King to Ace.
func (r Rank) Next() Rank {
	if r == King {
		return Ace
	}
	return r + 1
}

// Prev returns the rank below r, wrapping Ace to King.
func (r Rank) Prev() Rank {
	if r == Ace {
		return King
	}
	return r - 1
}

type Card struct {
	Suit   Suit `json:"suit"`
	Rank   Rank `json:"rank"`
	FaceUp bool `json:"face_up"`
}

// Same reports whether c and o are the same card, ignoring orientation.
func (c Card) Same(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// NewDeck returns the 52 cards of a single deck, face down, ordered by suit
// then rank.
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*int(King))
	for _, suit := range Suits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Suit: suit, Rank: r})
		}
	}
	return deck
}
