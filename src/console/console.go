package console

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lost-woods/fourseasons/src/game"
)

type handlerFunc func(r responder, args []string)

// Console reads one command per line and writes one response per command.
type Console struct {
	in     io.Reader
	out    responder
	routes map[string]handlerFunc
	log    *zap.SugaredLogger
}

func New(in io.Reader, out io.Writer, json bool, g *game.Game, log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	h := newHandlers(g, log)

	return &Console{
		in:  in,
		out: responder{w: out, json: json},
		routes: map[string]handlerFunc{
			"draw": h.Draw,
			"d":    h.Draw,
			"move": h.Move,
			"m":    h.Move,
			"undo": h.Undo,
			"u":    h.Undo,
			"redo": h.Redo,
			"r":    h.Redo,
			"show": h.Show,
			"s":    h.Show,
			"help": h.Help,
			"?":    h.Help,
		},
		log: log,
	}
}

// Exec runs a single command line. It returns false once the player quits.
func (c *Console) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	cmd := strings.ToLower(fields[0])
	if cmd == "quit" || cmd == "exit" || cmd == "q" {
		return false
	}

	handle, ok := c.routes[cmd]
	if !ok {
		c.out.err("unknown command " + `"` + fields[0] + `"` + ", try help")
		return true
	}
	c.log.Debugw("command", "cmd", cmd, "args", fields[1:])
	handle(c.out, fields[1:])
	return true
}

// Run executes commands until input ends, the player quits, or ctx is done.
// A read blocked on input does not hold up cancellation.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return errors.Wrap(err, "read commands")
				default:
					return ctx.Err()
				}
			}
			if !c.Exec(line) {
				return nil
			}
		}
	}
}
