package console

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lost-woods/fourseasons/src/cards"
	"github.com/lost-woods/fourseasons/src/game"
	"github.com/lost-woods/fourseasons/src/pile"
)

type handlers struct {
	g   *game.Game
	log *zap.SugaredLogger
}

func newHandlers(g *game.Game, log *zap.SugaredLogger) *handlers {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &handlers{g: g, log: log}
}

func (h *handlers) counters() map[string]any {
	return map[string]any{
		"score":      h.g.Score(),
		"cards_left": h.g.CardsLeft(),
		"won":        h.g.Won(),
	}
}

func (h *handlers) status() string {
	s := fmt.Sprintf("score %d, %d left", h.g.Score(), h.g.CardsLeft())
	if h.g.Won() {
		s += "\nAll four foundations are complete. You won!"
	}
	return s
}

// submit reports the outcome of m, explaining rejections.
func (h *handlers) submit(r responder, m *game.Move) {
	desc := m.String()
	if err := m.Check(h.g); err != nil {
		h.log.Debugw("command rejected", "move", desc, "error", err.Error())
		r.err("illegal move: " + err.Error())
		return
	}
	if !h.g.Submit(m) {
		r.err("illegal move: " + desc)
		return
	}

	payload := h.counters()
	payload["move"] = desc
	r.ok(desc+"\n"+h.status(), payload)
}

func (h *handlers) Draw(r responder, args []string) {
	if len(args) != 0 {
		r.err("usage: draw")
		return
	}
	h.submit(r, game.NewDraw(h.g.Stock, h.g.Waste))
}

func (h *handlers) Move(r responder, args []string) {
	if len(args) != 2 {
		r.err("usage: move <from> <to>")
		return
	}
	from, ok := h.g.Lookup(args[0])
	if !ok {
		r.err(fmt.Sprintf("unknown pile %q", args[0]))
		return
	}
	to, ok := h.g.Lookup(args[1])
	if !ok {
		r.err(fmt.Sprintf("unknown pile %q", args[1]))
		return
	}

	if to.Kind() == pile.Foundation {
		h.submit(r, game.NewToFoundation(from, nil, to))
		return
	}
	h.submit(r, game.NewToTableau(from, nil, to))
}

func (h *handlers) Undo(r responder, _ []string) {
	if !h.g.Undo() {
		r.err("nothing to undo")
		return
	}
	r.ok("undone\n"+h.status(), h.counters())
}

func (h *handlers) Redo(r responder, _ []string) {
	if !h.g.Redo() {
		r.err("nothing to redo")
		return
	}
	r.ok("redone\n"+h.status(), h.counters())
}

func faceText(c cards.Card) string {
	if !c.FaceUp {
		return "##"
	}
	return c.String()
}

func (h *handlers) Show(r responder, _ []string) {
	var out strings.Builder
	piles := make(map[string]any, len(h.g.Piles()))

	fmt.Fprintf(&out, "game %s (seed %d), base rank %s\n", h.g.ID(), h.g.Seed(), h.g.BaseRank())
	for _, p := range h.g.Piles() {
		top := "-"
		if c, err := p.Peek(); err == nil {
			top = faceText(c)
		}
		fmt.Fprintf(&out, "%-20s %2d  %s\n", p.Name(), p.Count(), top)
		piles[p.Name()] = map[string]any{"count": p.Count(), "top": top}
	}
	out.WriteString(h.status())

	payload := h.counters()
	payload["game"] = h.g.ID().String()
	payload["seed"] = h.g.Seed()
	payload["base_rank"] = h.g.BaseRank().String()
	payload["piles"] = piles
	r.ok(out.String(), payload)
}

func (h *handlers) Help(r responder, _ []string) {
	names := make([]string, 0, len(h.g.Piles()))
	for _, p := range h.g.Piles() {
		names = append(names, p.Name())
	}
	text := strings.Join([]string{
		"draw                 turn the top stock card onto the waste",
		"move <from> <to>     move the top card of one pile onto another",
		"undo | redo          step back or forward through your moves",
		"show                 print every pile",
		"quit                 leave the game",
		"piles: " + strings.Join(names, ", "),
	}, "\n")
	r.ok(text, map[string]any{"piles": names})
}
