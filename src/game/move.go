package game

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/pile"
)

var (
	ErrInvalidRankSequence = errors.New("rank out of sequence")
	ErrInvalidSuit         = errors.New("wrong suit")
	ErrForbiddenSource     = errors.New("pile cannot be a move source")
	ErrWrongBaseRank       = errors.New("foundation must start with the base rank")
	ErrInvalidTarget       = errors.New("pile cannot take part in this move")
	ErrAlreadyExecuted     = errors.New("move already executed")
	ErrNotExecuted         = errors.New("move is not executed")
)

type MoveKind uint8

const (
	// Draw turns the top stock card onto the waste.
	Draw MoveKind = iota + 1
	// ToFoundation builds a card onto its suit foundation.
	ToFoundation
	// ToTableau places a card on a cross pile.
	ToTableau
)

func (k MoveKind) String() string {
	switch k {
	case Draw:
		return "draw"
	case ToFoundation:
		return "to-foundation"
	case ToTableau:
		return "to-tableau"
	}
	return "unknown"
}

type moveState uint8

const (
	pending moveState = iota
	executed
	undone
)

// Move is a single card relocation. A Move is executed at most once and
// undone at most once; Redo may execute it again after an undo.
//
// When the card is nil the move takes whatever is on top of From when it
// executes. A non-nil card has already been lifted off From by the caller
// (a drag in progress) and is placed directly.
type Move struct {
	Kind MoveKind
	From *pile.Pile
	To   *pile.Pile

	card  *cards.Card
	moved cards.Card
	state moveState
}

func NewDraw(stock, to *pile.Pile) *Move {
	return &Move{Kind: Draw, From: stock, To: to}
}

func NewToFoundation(from *pile.Pile, card *cards.Card, foundation *pile.Pile) *Move {
	return newMove(ToFoundation, from, card, foundation)
}

func NewToTableau(from *pile.Pile, card *cards.Card, column *pile.Pile) *Move {
	return newMove(ToTableau, from, card, column)
}

func newMove(kind MoveKind, from *pile.Pile, card *cards.Card, to *pile.Pile) *Move {
	m := &Move{Kind: kind, From: from, To: to}
	if card != nil {
		c := *card
		m.card = &c
	}
	return m
}

// Card returns the card the move acts on: the lifted card if one was
// supplied, otherwise the top of the source.
func (m *Move) Card() (cards.Card, error) {
	if m.card != nil {
		return *m.card, nil
	}
	if m.state == executed {
		return m.moved, nil
	}
	return m.From.Peek()
}

func (m *Move) String() string {
	from, to := "?", "?"
	if m.From != nil {
		from = m.From.Name()
	}
	if m.To != nil {
		to = m.To.Name()
	}
	if c, err := m.Card(); err == nil {
		return fmt.Sprintf("%s %s %s->%s", m.Kind, c, from, to)
	}
	return fmt.Sprintf("%s %s->%s", m.Kind, from, to)
}

// Check reports why m cannot execute in g, or nil if it can.
func (m *Move) Check(g *Game) error {
	if m.state == executed {
		return ErrAlreadyExecuted
	}
	if m.From == nil || m.To == nil {
		return errors.Wrap(ErrInvalidTarget, "missing pile")
	}
	rule, ok := rules[m.Kind]
	if !ok {
		return errors.Wrapf(ErrInvalidTarget, "unknown move kind %d", m.Kind)
	}
	if err := m.checkLifted(g); err != nil {
		return err
	}
	return rule.check(m, g)
}

// checkLifted rejects an explicit card that is not a real card, or that no
// caller has actually taken off a pile of g.
func (m *Move) checkLifted(g *Game) error {
	if m.card == nil {
		return nil
	}
	if !m.card.Suit.Valid() || !m.card.Rank.Valid() {
		return errors.Wrapf(ErrInvalidTarget, "invalid card %s", *m.card)
	}
	if p := g.holder(*m.card); p != nil {
		return errors.Wrapf(ErrForbiddenSource, "%s is still in %s", *m.card, p.Name())
	}
	return nil
}

func (m *Move) Valid(g *Game) bool {
	return m.Check(g) == nil
}

// Execute validates m and, if legal, performs it. It returns false and
// changes nothing when the move is illegal.
func (m *Move) Execute(g *Game) bool {
	return m.execute(g) == nil
}

// Undo reverses a move executed by Execute. It refuses moves that are not
// currently executed, and moves whose card is no longer on top of the
// destination.
func (m *Move) Undo(g *Game) bool {
	return m.undo(g) == nil
}

func (m *Move) execute(g *Game) error {
	if err := m.Check(g); err != nil {
		return err
	}
	rule := rules[m.Kind]

	var c cards.Card
	if m.card != nil {
		c = *m.card
	} else {
		top, err := m.From.Get()
		if err != nil {
			return err
		}
		c = top
	}
	if rule.turnUp {
		c.FaceUp = true
	}
	m.To.Add(c)
	rule.counters(g, +1)

	// The card now lives in To; undo returns it to From, so a later redo
	// pops it from there.
	m.card = nil
	m.moved = c
	m.state = executed
	return nil
}

func (m *Move) undo(g *Game) error {
	if m.state != executed {
		return ErrNotExecuted
	}
	top, err := m.To.Peek()
	if err != nil {
		return err
	}
	if top != m.moved {
		return errors.Wrapf(ErrNotExecuted, "%s is no longer on top of %s", m.moved, m.To.Name())
	}

	c, _ := m.To.Get()
	if rules[m.Kind].turnUp {
		c.FaceUp = false
	}
	m.From.Add(c)
	rules[m.Kind].counters(g, -1)
	m.state = undone
	return nil
}
