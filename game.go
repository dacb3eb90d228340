package anima

import (
	"time"
)

// Game is the per-frame update contract. Update receives the wall-clock time
// elapsed since the previous call and returns false to stop the loop. A
// scripting host embeds its script behind this interface.
type Game interface {
	Update(dt time.Duration) bool
}

// GameFunc adapts an ordinary function to the Game interface.
type GameFunc func(dt time.Duration) bool

// Update calls f(dt).
func (f GameFunc) Update(dt time.Duration) bool { return f(dt) }

// Loop drives a Game in a tight poll without a window: every iteration
// measures the time since the previous one and calls Update until it
// returns false.
type Loop struct {
	Game Game

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time

	frames uint64
}

// NewLoop returns a Loop driving g.
func NewLoop(g Game) *Loop {
	return &Loop{Game: g}
}

func (l *Loop) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Run blocks until the game asks to stop. The first Update receives the time
// elapsed since Run was called.
func (l *Loop) Run() {
	Logger().Info("anima: loop started")

	last := l.now()
	for {
		t := l.now()
		dt := t.Sub(last)
		last = t

		l.frames++
		if !l.Game.Update(dt) {
			break
		}
	}

	Logger().Info("anima: loop stopped", "frames", l.frames)
}

// Frames returns the number of Update calls made so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}
