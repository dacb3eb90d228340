package input

import (
	"testing"
	"time"
)

func newTestArea(special *SpecialSelect) *SelectableArea {
	return NewSelectableArea(0, 0, 0, 100, 100, special)
}

func TestSelectableAreaRepress(t *testing.T) {
	a := newTestArea(nil)

	assertEvents(t, a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0),
		batch(SelectablePressed(0, 50, 50)))
	assertEvents(t, a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0),
		batch(SelectablePressed(0, 50, 50)))
}

func TestSelectableAreaDrag(t *testing.T) {
	a := newTestArea(nil)

	assertEvents(t, a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0),
		batch(SelectablePressed(0, 50, 50)))
	assertEvents(t, a.Process(batch(CursorPressed(50, 51, MouseButtonLeft)), 0),
		batch(SelectableDragged(0, 50, 51)))

	// The dragged-to point becomes the new reference.
	assertEvents(t, a.Process(batch(CursorPressed(50, 51, MouseButtonLeft)), 0),
		batch(SelectablePressed(0, 50, 51)))
	if x, y, ok := a.Pressed(); !ok || x != 50 || y != 51 {
		t.Errorf("Pressed() = %d, %d, %v; want 50, 51, true", x, y, ok)
	}
}

func TestSelectableAreaRelease(t *testing.T) {
	a := newTestArea(nil)
	a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0)

	assertEvents(t, a.Process(batch(CursorReleased(60, 60, MouseButtonLeft)), 0),
		batch(SelectableReleased(0, 60, 60)))
	if _, _, ok := a.Pressed(); ok {
		t.Error("primary channel should be cleared")
	}

	// A second release has nothing to release.
	ev := CursorReleased(60, 60, MouseButtonLeft)
	assertEvents(t, a.Process(batch(ev), 0), batch(ev))
}

func TestSelectableAreaPassThrough(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"press outside", CursorPressed(150, 50, MouseButtonLeft)},
		{"release while none", CursorReleased(50, 50, MouseButtonLeft)},
		{"right press without special", CursorPressed(50, 50, MouseButtonRight)},
		{"raw event", MouseMoved(50, 50)},
		{"touch", TouchEvent(TouchStarted, 50, 50, 1)},
		{"other intermediate", ButtonPressed(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArea(nil)
			assertEvents(t, a.Process(batch(tt.ev), 0), batch(tt.ev))
		})
	}
}

func TestSelectableAreaOutsideWhilePressed(t *testing.T) {
	a := newTestArea(nil)
	a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0)

	press := CursorPressed(150, 150, MouseButtonLeft)
	release := CursorReleased(150, 150, MouseButtonLeft)
	assertEvents(t, a.Process(batch(press, release), 0), batch(press, release))
	if _, _, ok := a.Pressed(); !ok {
		t.Error("release outside must not clear the primary channel")
	}
}

func TestSelectableAreaSpecialIndependent(t *testing.T) {
	a := newTestArea(&SpecialSelect{Button: MouseButtonRight, TouchTime: 500 * time.Millisecond})

	assertEvents(t, a.Process(batch(CursorPressed(50, 50, MouseButtonRight)), 0),
		batch(SelectableSpecialPressed(0, 50, 50)))
	if _, _, ok := a.Pressed(); ok {
		t.Error("special press must not touch the primary channel")
	}
	if x, y, ok := a.SpecialPressed(); !ok || x != 50 || y != 50 {
		t.Errorf("SpecialPressed() = %d, %d, %v; want 50, 50, true", x, y, ok)
	}

	// Primary and special held at once.
	out := a.Process(batch(
		CursorPressed(10, 10, MouseButtonLeft),
		CursorPressed(52, 50, MouseButtonRight),
	), 0)
	assertEvents(t, out, batch(
		SelectablePressed(0, 10, 10),
		SelectableSpecialDragged(0, 52, 50),
	))

	out = a.Process(batch(
		CursorReleased(52, 50, MouseButtonRight),
		CursorPressed(10, 10, MouseButtonLeft),
	), 0)
	assertEvents(t, out, batch(
		SelectableSpecialReleased(0, 52, 50),
		SelectablePressed(0, 10, 10),
	))
	if _, _, ok := a.SpecialPressed(); ok {
		t.Error("special channel should be cleared")
	}
	if _, _, ok := a.Pressed(); !ok {
		t.Error("primary channel should still be held")
	}
}

func TestSelectableAreaSpecialIgnoresOtherButtons(t *testing.T) {
	a := newTestArea(&SpecialSelect{Button: MouseButtonRight})
	ev := CursorPressed(50, 50, MouseButtonMiddle)
	assertEvents(t, a.Process(batch(ev), 0), batch(ev))
}

func TestSelectableAreaSpecialOnLeftNeverReachesSpecial(t *testing.T) {
	a := newTestArea(&SpecialSelect{Button: MouseButtonLeft})
	assertEvents(t, a.Process(batch(CursorPressed(50, 50, MouseButtonLeft)), 0),
		batch(SelectablePressed(0, 50, 50)))
	if _, _, ok := a.SpecialPressed(); ok {
		t.Error("left events are handled by the primary channel first")
	}
}

func TestSelectableAreaSpecialSetAfterConstruction(t *testing.T) {
	a := newTestArea(nil)
	a.Special = &SpecialSelect{Button: MouseButtonMiddle}
	assertEvents(t, a.Process(batch(CursorPressed(5, 5, MouseButtonMiddle)), 0),
		batch(SelectableSpecialPressed(0, 5, 5)))
}
