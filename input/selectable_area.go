package input

import "time"

// SpecialSelect configures the secondary gesture of a SelectableArea: the
// mouse button that drives it and the hold time a touch needs to count as a
// special press.
type SpecialSelect struct {
	Button    MouseButton
	TouchTime time.Duration
}

// SelectableArea reports presses, drags and releases inside Rect. The
// primary channel follows the left button; when Special is set, a second
// independent channel follows Special.Button and emits the
// SelectableSpecial* events. The two channels never block each other.
// Create areas with NewSelectableArea.
type SelectableArea struct {
	ID      uint32
	Rect    Rect
	Special *SpecialSelect

	primary channel
	special channel
}

// NewSelectableArea returns an area covering the given rectangle. special
// may be nil.
func NewSelectableArea(id uint32, x, y, width, height int, special *SpecialSelect) *SelectableArea {
	return &SelectableArea{
		ID:      id,
		Rect:    Rect{X: x, Y: y, Width: width, Height: height},
		Special: special,
		primary: channel{
			button:   MouseButtonLeft,
			pressed:  SelectablePressed,
			dragged:  SelectableDragged,
			released: SelectableReleased,
		},
		special: channel{
			pressed:  SelectableSpecialPressed,
			dragged:  SelectableSpecialDragged,
			released: SelectableSpecialReleased,
		},
	}
}

// Pressed returns the last point of the primary channel; ok is false when it
// is not held.
func (a *SelectableArea) Pressed() (x, y int, ok bool) {
	return a.primary.x, a.primary.y, a.primary.held
}

// SpecialPressed returns the last point of the special channel; ok is false
// when it is not held.
func (a *SelectableArea) SpecialPressed() (x, y int, ok bool) {
	return a.special.x, a.special.y, a.special.held
}

// Process implements Intermediate. dt is unused.
func (a *SelectableArea) Process(events []Event, _ time.Duration) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Kind != EventIntermediate {
			out = append(out, ev)
			continue
		}
		if next, ok := a.primary.handle(a.ID, a.Rect, ev.Intermediate); ok {
			out = append(out, next)
			continue
		}
		if a.Special != nil {
			a.special.button = a.Special.Button
			if next, ok := a.special.handle(a.ID, a.Rect, ev.Intermediate); ok {
				out = append(out, next)
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}

// channel is the press/drag/release state machine for one button.
type channel struct {
	button MouseButton
	held   bool
	x, y   int

	pressed, dragged, released func(id uint32, x, y int) Event
}

// matches reports whether ie belongs to this channel's button and falls
// inside r.
func (c *channel) matches(r Rect, ie IntermediateEvent) bool {
	return ie.Button == c.button && r.Contains(ie.X, ie.Y)
}

// handle returns the replacement for ie, or false when ie passes through.
func (c *channel) handle(id uint32, r Rect, ie IntermediateEvent) (Event, bool) {
	if !c.matches(r, ie) {
		return Event{}, false
	}

	switch ie.Type {
	case TypeCursorPressed:
		if !c.held {
			c.held, c.x, c.y = true, ie.X, ie.Y
			return c.pressed(id, ie.X, ie.Y), true
		}
		if ie.X == c.x && ie.Y == c.y {
			return c.pressed(id, ie.X, ie.Y), true
		}
		c.x, c.y = ie.X, ie.Y
		return c.dragged(id, ie.X, ie.Y), true
	case TypeCursorReleased:
		if c.held {
			c.held = false
			return c.released(id, ie.X, ie.Y), true
		}
	}
	return Event{}, false
}
