package game

import (
	"github.com/pkg/errors"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/pile"
)

// BaseSuit is the suit whose first card out of the stock fixes the base rank.
const BaseSuit = cards.Hearts

// deal lays out the opening position. None of its moves enter the history.
func (g *Game) deal() error {
	for _, column := range g.Tableau {
		if err := NewDraw(g.Stock, g.Waste).execute(g); err != nil {
			return errors.Wrapf(err, "deal %s", column.Name())
		}
		if err := NewToTableau(g.Waste, nil, column).execute(g); err != nil {
			return errors.Wrapf(err, "deal %s", column.Name())
		}
	}

	hold := pile.New("Hold", pile.Hold)
	var held []*Move
	for {
		draw := NewDraw(g.Stock, hold)
		if err := draw.execute(g); err != nil {
			return errors.Wrapf(err, "looking for the first %s", BaseSuit)
		}
		if c, _ := hold.Peek(); c.Suit == BaseSuit {
			break
		}
		held = append(held, draw)
	}

	base, _ := hold.Peek()
	if err := g.setBaseRank(base.Rank); err != nil {
		return err
	}
	if err := NewToFoundation(hold, nil, g.Foundations[BaseSuit]).execute(g); err != nil {
		return errors.Wrap(err, "seed foundation")
	}

	// Put the skipped cards back in the order they came out.
	for i := len(held) - 1; i >= 0; i-- {
		if err := held[i].undo(g); err != nil {
			return errors.Wrap(err, "restore stock")
		}
	}
	return nil
}
