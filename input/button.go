package input

import "time"

// Button turns left-button cursor events and raw touches inside Rect into
// ButtonPressed, ButtonReleased and ButtonCanceled events for one widget.
//
// Button tracks a single pressed flag and is not touch-ID aware: concurrent
// touches alias the same state. A cancelled touch reports ButtonCanceled but
// leaves the button pressed, so a following touch echoes ButtonPressed
// without a fresh press inside the rectangle.
type Button struct {
	ID   uint32
	Rect Rect

	pressed bool
}

// NewButton returns a released button covering the given rectangle.
func NewButton(id uint32, x, y, width, height int) *Button {
	return &Button{ID: id, Rect: Rect{X: x, Y: y, Width: width, Height: height}}
}

// Pressed reports whether the button is currently held.
func (b *Button) Pressed() bool {
	return b.pressed
}

// Process implements Intermediate. dt is unused.
func (b *Button) Process(events []Event, _ time.Duration) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if next, ok := b.handle(ev); ok {
			out = append(out, next)
		} else {
			out = append(out, ev)
		}
	}
	return out
}

// handle returns the replacement for ev, or false when ev passes through.
func (b *Button) handle(ev Event) (Event, bool) {
	switch ev.Kind {
	case EventIntermediate:
		return b.handleCursor(ev.Intermediate)
	case EventRaw:
		if ev.Raw.Kind == RawTouch {
			return b.handleTouch(ev.Raw.Touch)
		}
	}
	return Event{}, false
}

func (b *Button) handleCursor(ie IntermediateEvent) (Event, bool) {
	if ie.Button != MouseButtonLeft {
		return Event{}, false
	}

	switch ie.Type {
	case TypeCursorPressed:
		if b.Rect.Contains(ie.X, ie.Y) {
			b.pressed = true
			return ButtonPressed(b.ID), true
		}
		if b.pressed {
			return ButtonPressed(b.ID), true
		}
	case TypeCursorReleased:
		if b.pressed {
			b.pressed = false
			return b.release(b.Rect.Contains(ie.X, ie.Y)), true
		}
	}
	return Event{}, false
}

func (b *Button) handleTouch(t Touch) (Event, bool) {
	switch t.Phase {
	case TouchStarted:
		if b.pressed {
			return ButtonPressed(b.ID), true
		}
		if b.Rect.containsTouch(t) {
			b.pressed = true
			return ButtonPressed(b.ID), true
		}
	case TouchMoved:
		if b.pressed {
			return ButtonPressed(b.ID), true
		}
	case TouchEnded:
		if b.pressed {
			b.pressed = false
			return b.release(b.Rect.containsTouch(t)), true
		}
	case TouchCancelled:
		if b.pressed {
			return ButtonCanceled(b.ID), true
		}
	}
	return Event{}, false
}

func (b *Button) release(inside bool) Event {
	if inside {
		return ButtonReleased(b.ID)
	}
	return ButtonCanceled(b.ID)
}
