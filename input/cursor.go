package input

import (
	"slices"
	"time"
)

// Cursor tracks the pointer position and which mouse buttons are held. It
// turns raw mouse events into CursorReleased events as buttons go up, and
// appends one level-triggered CursorPressed per held button to the end of
// every batch once the position is known.
type Cursor struct {
	x, y    int
	known   bool
	pressed map[MouseButton]bool
	held    []MouseButton // scratch for the end-of-batch sweep
}

// NewCursor returns a Cursor with no known position and no held buttons.
func NewCursor() *Cursor {
	return &Cursor{pressed: make(map[MouseButton]bool)}
}

// Position returns the last pointer position; ok is false until the first
// move has been seen.
func (c *Cursor) Position() (x, y int, ok bool) {
	return c.x, c.y, c.known
}

// Held reports whether button is currently held.
func (c *Cursor) Held(button MouseButton) bool {
	return c.pressed[button]
}

// Process implements Intermediate. dt is ignored.
func (c *Cursor) Process(events []Event, _ time.Duration) []Event {
	out := make([]Event, 0, len(events)+len(c.pressed))
	for _, ev := range events {
		if ev.Kind != EventRaw {
			out = append(out, ev)
			continue
		}

		switch r := ev.Raw; r.Kind {
		case RawMouseMoved:
			c.x, c.y, c.known = r.X, r.Y, true
		case RawMouseInput:
			if r.State == Pressed {
				c.pressed[r.Button] = true
				continue
			}
			c.pressed[r.Button] = false
			if c.known {
				out = append(out, CursorReleased(c.x, c.y, r.Button))
			}
		default:
			out = append(out, ev)
		}
	}

	if !c.known {
		return out
	}

	// Sweep held buttons in ascending order so output is deterministic.
	c.held = c.held[:0]
	for b, down := range c.pressed {
		if down {
			c.held = append(c.held, b)
		}
	}
	slices.Sort(c.held)
	for _, b := range c.held {
		out = append(out, CursorPressed(c.x, c.y, b))
	}
	return out
}
