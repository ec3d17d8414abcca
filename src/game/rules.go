package game

import (
	"github.com/pkg/errors"

	"github.com/lost-woods/fourseasons/src/pile"
)

type rule struct {
	check    func(m *Move, g *Game) error
	counters func(g *Game, sign int)
	// turnUp flips the card face up on the way out and face down on undo.
	turnUp bool
}

var rules = map[MoveKind]rule{
	Draw: {
		check:    checkDraw,
		counters: func(g *Game, sign int) { g.cardsLeft -= sign },
		turnUp:   true,
	},
	ToFoundation: {
		check:    checkFoundation,
		counters: func(g *Game, sign int) { g.score += sign },
	},
	ToTableau: {
		check:    checkTableau,
		counters: func(*Game, int) {},
	},
}

func checkDraw(m *Move, _ *Game) error {
	if m.From.Kind() != pile.Stock {
		return errors.Wrapf(ErrInvalidTarget, "cannot draw from %s", m.From.Name())
	}
	if k := m.To.Kind(); k != pile.Waste && k != pile.Hold {
		return errors.Wrapf(ErrInvalidTarget, "cannot draw onto %s", m.To.Name())
	}
	if m.From.Empty() {
		return errors.Wrap(pile.ErrEmptySource, m.From.Name())
	}
	return nil
}

// checkSource rejects foundations, which only ever accumulate, and the
// stock, which only feeds the waste.
func checkSource(m *Move) error {
	switch m.From.Kind() {
	case pile.Foundation, pile.Stock:
		return errors.Wrapf(ErrForbiddenSource, "%s", m.From.Name())
	}
	return nil
}

func checkFoundation(m *Move, g *Game) error {
	if m.To.Kind() != pile.Foundation {
		return errors.Wrapf(ErrInvalidTarget, "%s is not a foundation", m.To.Name())
	}
	if err := checkSource(m); err != nil {
		return err
	}
	c, err := m.Card()
	if err != nil {
		return err
	}

	top, err := m.To.Peek()
	if err != nil {
		if c.Suit != m.To.Suit() {
			return errors.Wrapf(ErrInvalidSuit, "%s on %s", c, m.To.Name())
		}
		if g.baseRank == 0 || c.Rank != g.baseRank {
			return errors.Wrapf(ErrWrongBaseRank, "%s on empty %s, base is %s", c, m.To.Name(), g.baseRank)
		}
		return nil
	}

	if c.Suit != top.Suit {
		return errors.Wrapf(ErrInvalidSuit, "%s on %s", c, top)
	}
	if c.Rank != top.Rank.Next() {
		return errors.Wrapf(ErrInvalidRankSequence, "%s on %s", c, top)
	}
	return nil
}

func checkTableau(m *Move, _ *Game) error {
	if m.To.Kind() != pile.Tableau {
		return errors.Wrapf(ErrInvalidTarget, "%s is not a cross pile", m.To.Name())
	}
	if err := checkSource(m); err != nil {
		return err
	}
	c, err := m.Card()
	if err != nil {
		return err
	}

	top, err := m.To.Peek()
	if err != nil {
		return nil
	}
	// Suit is ignored and the sequence wraps, so a King may go on an Ace.
	if c.Rank != top.Rank.Prev() {
		return errors.Wrapf(ErrInvalidRankSequence, "%s on %s", c, top)
	}
	return nil
}
