package game

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/pile"
	"github.com/lost-woods/fourseasons/src/rng"
)

// WinningScore is reached once every card has been placed on a foundation.
const WinningScore = 52

// PileID names every pile of a session.
type PileID uint8

const (
	Stock PileID = iota
	Waste
	ClubsFoundation
	DiamondsFoundation
	HeartsFoundation
	SpadesFoundation
	TopCross
	LeftCross
	MiddleCross
	RightCross
	BottomCross

	numPiles
)

var pileNames = [numPiles]string{
	"Stock",
	"Waste",
	"ClubsFoundation",
	"DiamondsFoundation",
	"HeartsFoundation",
	"SpadesFoundation",
	"TopCross",
	"LeftCross",
	"MiddleCross",
	"RightCross",
	"BottomCross",
}

func (id PileID) String() string {
	if id >= numPiles {
		return "Unknown"
	}
	return pileNames[id]
}

// ParsePileID resolves a pile name, ignoring case.
func ParsePileID(name string) (PileID, bool) {
	for id, n := range pileNames {
		if strings.EqualFold(n, name) {
			return PileID(id), true
		}
	}
	return 0, false
}

// FoundationFor returns the foundation that builds suit s.
func FoundationFor(s cards.Suit) PileID {
	return ClubsFoundation + PileID(s)
}

type Options struct {
	// Seed drives the shuffle. Equal seeds deal equal games.
	Seed uint64
	// Deck, when set, is used as the stock (bottom card first) instead of a
	// shuffled deck. It must hold each of the 52 cards exactly once.
	Deck []cards.Card
	// Entropy is the source for the session ID. Nil uses crypto/rand.
	Entropy io.Reader
	Logger  *zap.SugaredLogger
}

// Game is the state of one Four Seasons session. It is not safe for
// concurrent use; see Locked.
type Game struct {
	Stock       *pile.Pile
	Waste       *pile.Pile
	Foundations [4]*pile.Pile // indexed by cards.Suit
	Tableau     [5]*pile.Pile // Top, Left, Middle, Right, Bottom

	id        uuid.UUID
	seed      uint64
	score     int
	cardsLeft int
	baseRank  cards.Rank
	history   History
	byID      [numPiles]*pile.Pile
	log       *zap.SugaredLogger
}

// New builds a shuffled stock and deals the opening layout.
func New(opts Options) (*Game, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	deck := opts.Deck
	if deck == nil {
		deck = cards.NewDeck()
		err := rng.Shuffle(rng.NewSeededReader(opts.Seed), len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		if err != nil {
			return nil, err
		}
	} else if err := validateDeck(deck); err != nil {
		return nil, err
	}

	id, err := rng.NewSessionID(opts.Entropy)
	if err != nil {
		return nil, err
	}

	g := newGame(id, opts.Seed, log)
	for _, c := range deck {
		c.FaceUp = false
		g.Stock.Add(c)
	}
	g.cardsLeft = g.Stock.Count()

	if err := g.deal(); err != nil {
		return nil, errors.Wrap(err, "deal")
	}

	log.Infow("new game dealt",
		"game", id.String(),
		"seed", opts.Seed,
		"base_rank", g.baseRank.String(),
		"cards_left", g.cardsLeft,
	)
	return g, nil
}

func newGame(id uuid.UUID, seed uint64, log *zap.SugaredLogger) *Game {
	g := &Game{id: id, seed: seed, log: log}
	for pid := Stock; pid < numPiles; pid++ {
		var p *pile.Pile
		switch {
		case pid == Stock:
			p = pile.New(pid.String(), pile.Stock)
			g.Stock = p
		case pid == Waste:
			p = pile.New(pid.String(), pile.Waste)
			g.Waste = p
		case pid <= SpadesFoundation:
			suit := cards.Suit(pid - ClubsFoundation)
			p = pile.NewFoundation(pid.String(), suit)
			g.Foundations[suit] = p
		default:
			p = pile.New(pid.String(), pile.Tableau)
			g.Tableau[pid-TopCross] = p
		}
		g.byID[pid] = p
	}
	return g
}

func validateDeck(deck []cards.Card) error {
	if len(deck) != 52 {
		return errors.Errorf("deck has %d cards, want 52", len(deck))
	}
	seen := make(map[[2]uint8]bool, 52)
	for _, c := range deck {
		if !c.Suit.Valid() || !c.Rank.Valid() {
			return errors.Errorf("invalid card %s", c)
		}
		key := [2]uint8{uint8(c.Suit), uint8(c.Rank)}
		if seen[key] {
			return errors.Errorf("duplicate card %s", c)
		}
		seen[key] = true
	}
	return nil
}

func (g *Game) ID() uuid.UUID        { return g.id }
func (g *Game) Seed() uint64         { return g.seed }
func (g *Game) Score() int           { return g.score }
func (g *Game) CardsLeft() int       { return g.cardsLeft }
func (g *Game) BaseRank() cards.Rank { return g.baseRank }
func (g *Game) History() *History    { return &g.history }
func (g *Game) Won() bool            { return g.score >= WinningScore }

// Pile returns the pile for id, or nil for an unknown id.
func (g *Game) Pile(id PileID) *pile.Pile {
	if id >= numPiles {
		return nil
	}
	return g.byID[id]
}

// Lookup resolves a pile by name for adapters that only have a string.
func (g *Game) Lookup(name string) (*pile.Pile, bool) {
	id, ok := ParsePileID(name)
	if !ok {
		return nil, false
	}
	return g.byID[id], true
}

// Counter resolves "score" or "numLeft" by name.
func (g *Game) Counter(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "score":
		return g.score, true
	case "numleft", "cardsleft":
		return g.cardsLeft, true
	}
	return 0, false
}

// Piles returns every pile in PileID order.
func (g *Game) Piles() []*pile.Pile {
	out := make([]*pile.Pile, 0, numPiles)
	out = append(out, g.byID[:]...)
	return out
}

// TotalCards counts the cards over all piles.
func (g *Game) TotalCards() int {
	n := 0
	for _, p := range g.byID {
		n += p.Count()
	}
	return n
}

func (g *Game) owns(p *pile.Pile) bool {
	for _, q := range g.byID {
		if q == p {
			return true
		}
	}
	return false
}

// holder returns the pile that holds c, or nil if no pile does.
func (g *Game) holder(c cards.Card) *pile.Pile {
	for _, p := range g.byID {
		if p.Contains(c) {
			return p
		}
	}
	return nil
}

func (g *Game) setBaseRank(r cards.Rank) error {
	if g.baseRank != 0 {
		return errors.Errorf("base rank already fixed at %s", g.baseRank)
	}
	g.baseRank = r
	return nil
}

// Submit validates and executes m, recording it for undo on success. A
// rejected move leaves the game untouched.
func (g *Game) Submit(m *Move) bool {
	if m == nil {
		return false
	}
	if !g.owns(m.From) || !g.owns(m.To) {
		g.log.Debugw("move rejected", "game", g.id.String(), "move", m.String(), "error", "pile not part of this game")
		return false
	}

	if err := m.execute(g); err != nil {
		g.log.Debugw("move rejected", "game", g.id.String(), "move", m.String(), "error", err.Error())
		return false
	}
	g.history.Push(m)

	g.log.Debugw("move accepted",
		"game", g.id.String(),
		"move", m.String(),
		"score", g.score,
		"cards_left", g.cardsLeft,
	)
	if g.Won() {
		g.log.Infow("game won", "game", g.id.String(), "moves", g.history.Len())
	}
	return true
}

// Undo reverses the most recent move.
func (g *Game) Undo() bool {
	ok := g.history.Undo(g)
	g.log.Debugw("undo", "game", g.id.String(), "ok", ok, "score", g.score, "cards_left", g.cardsLeft)
	return ok
}

// Redo replays the most recently undone move.
func (g *Game) Redo() bool {
	ok := g.history.Redo(g)
	g.log.Debugw("redo", "game", g.id.String(), "ok", ok, "score", g.score, "cards_left", g.cardsLeft)
	return ok
}
