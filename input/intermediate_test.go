package input

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/phanxgames/anima/internal/logging"
)

type recordingStore struct {
	events []IntermediateEvent
}

func (s *recordingStore) EmitEvent(e IntermediateEvent) {
	s.events = append(s.events, e)
}

func TestPipelineCursorThenButton(t *testing.T) {
	p := NewPipeline(NewCursor(), NewButton(1, 40, 40, 20, 20))

	out := p.Process(batch(MouseMoved(45, 45), MouseInput(Pressed, MouseButtonLeft)), 0)
	assertEvents(t, out, batch(ButtonPressed(1)))

	out = p.Process(nil, 0)
	assertEvents(t, out, batch(ButtonPressed(1)))

	out = p.Process(batch(MouseMoved(100, 100), MouseInput(Released, MouseButtonLeft)), 0)
	assertEvents(t, out, batch(ButtonCanceled(1)))
}

func TestPipelineOrderMatters(t *testing.T) {
	// Button before Cursor sees only raw events and passes them all on.
	p := NewPipeline(NewButton(1, 0, 0, 10, 10), NewCursor())
	out := p.Process(batch(MouseMoved(5, 5), MouseInput(Pressed, MouseButtonLeft)), 0)
	assertEvents(t, out, batch(CursorPressed(5, 5, MouseButtonLeft)))
}

func TestPipelineAddAndStages(t *testing.T) {
	var seen []time.Duration
	p := NewPipeline()
	p.Add(IntermediateFunc(func(events []Event, dt time.Duration) []Event {
		seen = append(seen, dt)
		return append(events, ButtonPressed(99))
	}))
	if n := len(p.Stages()); n != 1 {
		t.Fatalf("len(Stages()) = %d, want 1", n)
	}

	out := p.Process(nil, 16*time.Millisecond)
	assertEvents(t, out, batch(ButtonPressed(99)))
	if len(seen) != 1 || seen[0] != 16*time.Millisecond {
		t.Errorf("dt seen = %v, want [16ms]", seen)
	}
}

func TestPipelineDispatcherAndStore(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher()
	var pressed []uint32
	d.On(TypeButtonPressed, func(e IntermediateEvent) { pressed = append(pressed, e.ID) })

	p := NewPipeline(NewCursor(), NewButton(3, 0, 0, 10, 10))
	p.SetDispatcher(d)
	p.SetEventStore(store)

	p.Process(batch(MouseMoved(5, 5), MouseInput(Pressed, MouseButtonLeft)), 0)
	p.Process(batch(MouseMoved(50, 50)), 0)

	if len(pressed) != 2 || pressed[0] != 3 || pressed[1] != 3 {
		t.Errorf("dispatched ids = %v, want [3 3]", pressed)
	}
	if len(store.events) != 2 {
		t.Fatalf("stored %d events, want 2", len(store.events))
	}
	if store.events[0] != ButtonPressed(3).Intermediate {
		t.Errorf("stored %v, want ButtonPressed(3)", store.events[0])
	}

	p.SetDispatcher(nil)
	p.Process(batch(MouseInput(Released, MouseButtonLeft)), 0)
	if len(store.events) != 3 || store.events[2] != ButtonCanceled(3).Intermediate {
		t.Errorf("stored %v, want a trailing ButtonCanceled(3)", store.events)
	}
	if len(pressed) != 2 {
		t.Errorf("dispatch after SetDispatcher(nil): ids = %v", pressed)
	}
}

func TestPipelineStoreSkipsRawEvents(t *testing.T) {
	store := &recordingStore{}
	p := NewPipeline()
	p.SetEventStore(store)

	out := p.Process(batch(MouseMoved(1, 1), TouchEvent(TouchStarted, 2, 2, 1)), 0)
	if len(out) != 2 {
		t.Errorf("empty pipeline returned %d events, want 2", len(out))
	}
	if len(store.events) != 0 {
		t.Errorf("stored raw events: %v", store.events)
	}
}

func TestPipelineDebugLogging(t *testing.T) {
	orig := logging.Logger()
	t.Cleanup(func() { logging.Set(orig) })

	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p := NewPipeline(NewCursor())
	p.Process(batch(MouseMoved(1, 1)), 0)
	if !strings.Contains(buf.String(), "pipeline frame") || !strings.Contains(buf.String(), "in=1") {
		t.Errorf("log output = %q", buf.String())
	}
}

func BenchmarkPipeline(b *testing.B) {
	stages := []Intermediate{NewCursor()}
	for i := 0; i < 16; i++ {
		stages = append(stages, NewButton(uint32(i), i*20, 0, 18, 18))
		stages = append(stages, NewSelectableArea(uint32(100+i), i*20, 40, 18, 18,
			&SpecialSelect{Button: MouseButtonRight}))
	}
	p := NewPipeline(stages...)
	frames := [][]Event{
		{MouseMoved(5, 5), MouseInput(Pressed, MouseButtonLeft)},
		{MouseMoved(6, 45)},
		{MouseMoved(7, 46), MouseInput(Pressed, MouseButtonRight)},
		{MouseInput(Released, MouseButtonLeft), MouseInput(Released, MouseButtonRight)},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Process(frames[i%len(frames)], 16*time.Millisecond)
	}
}
