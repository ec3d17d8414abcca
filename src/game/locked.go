package game

import "sync"

// Locked wraps a Game and serializes every call with a mutex, for hosts
// where more than one goroutine can act on the same session.
type Locked struct {
	mu sync.Mutex
	g  *Game
}

// NewLocked returns a Locked for g. Callers must not keep using g directly.
func NewLocked(g *Game) *Locked {
	if g == nil {
		return nil
	}
	return &Locked{g: g}
}

// Submit builds a move against the game and submits it under the lock, so
// pile references are resolved and used in one critical section.
func (l *Locked) Submit(build func(g *Game) *Move) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Submit(build(l.g))
}

func (l *Locked) Undo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Undo()
}

func (l *Locked) Redo() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Redo()
}

// Do runs fn with exclusive access to the game.
func (l *Locked) Do(fn func(g *Game)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.g)
}

func (l *Locked) Score() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Score()
}

func (l *Locked) CardsLeft() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.CardsLeft()
}
