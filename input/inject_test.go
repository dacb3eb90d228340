package input

import "testing"

func TestInjectorOneBatchPerPoll(t *testing.T) {
	j := NewInjector()
	j.InjectClick(10, 20, MouseButtonRight)
	if j.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", j.Len())
	}

	assertEvents(t, j.Poll(), batch(MouseMoved(10, 20), MouseInput(Pressed, MouseButtonRight)))
	if j.Len() != 1 {
		t.Errorf("Len() = %d, want 1", j.Len())
	}
	assertEvents(t, j.Poll(), batch(MouseMoved(10, 20), MouseInput(Released, MouseButtonRight)))
	if got := j.Poll(); got != nil {
		t.Errorf("Poll() on empty queue = %v, want nil", got)
	}
}

func TestInjectDrag(t *testing.T) {
	j := NewInjector()
	j.InjectDrag(0, 0, 30, 60, 5)
	if j.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", j.Len())
	}

	// Intermediate points are truncated towards zero.
	want := [][]Event{
		{MouseMoved(0, 0), MouseInput(Pressed, MouseButtonLeft)},
		{MouseMoved(7, 15)},
		{MouseMoved(15, 30)},
		{MouseMoved(22, 45)},
		{MouseMoved(30, 60), MouseInput(Released, MouseButtonLeft)},
	}
	for _, w := range want {
		assertEvents(t, j.Poll(), w)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	j := NewInjector()
	j.InjectDrag(0, 0, 5, 5, 0)
	if j.Len() != 2 {
		t.Errorf("Len() = %d, want 2", j.Len())
	}
}

func TestInjectorDrivesPipeline(t *testing.T) {
	j := NewInjector()
	area := NewSelectableArea(1, 0, 0, 100, 100, nil)
	p := NewPipeline(NewCursor(), area)

	j.InjectDrag(10, 10, 40, 10, 3)
	var got []Event
	for j.Len() > 0 {
		got = append(got, p.Process(j.Poll(), 0)...)
	}
	assertEvents(t, got, batch(
		SelectablePressed(1, 10, 10),
		SelectableDragged(1, 25, 10),
		SelectableReleased(1, 40, 10),
	))
}

func TestInjectTouchAndBatch(t *testing.T) {
	j := NewInjector()
	j.InjectTouch(TouchEnded, 1.5, 2.5, 9)
	j.InjectBatch(MouseMoved(1, 1), ButtonPressed(2))

	assertEvents(t, j.Poll(), batch(TouchEvent(TouchEnded, 1.5, 2.5, 9)))
	assertEvents(t, j.Poll(), batch(MouseMoved(1, 1), ButtonPressed(2)))
}
