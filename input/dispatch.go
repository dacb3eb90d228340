package input

// EventStore receives every intermediate event a Pipeline produces. It is
// the bridge to an ECS world; see the ecs sub-module for a Donburi
// implementation.
type EventStore interface {
	EmitEvent(IntermediateEvent)
}

type handler struct {
	id uint32
	fn func(IntermediateEvent)
}

// Dispatcher calls registered handlers for intermediate events, in
// registration order.
type Dispatcher struct {
	handlers map[IntermediateType][]handler
	nextID   uint32
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[IntermediateType][]handler)}
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id  uint32
	d   *Dispatcher
	typ IntermediateType
}

// Remove unregisters the handler so it no longer fires. Removing twice is a
// no-op.
func (h CallbackHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.handlers[h.typ]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler{}
			h.d.handlers[h.typ] = s[:len(s)-1]
			return
		}
	}
}

// On registers fn for events of type t.
func (d *Dispatcher) On(t IntermediateType, fn func(IntermediateEvent)) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.handlers[t] = append(d.handlers[t], handler{id: id, fn: fn})
	return CallbackHandle{id: id, d: d, typ: t}
}

// Len returns the number of handlers registered for t.
func (d *Dispatcher) Len(t IntermediateType) int {
	return len(d.handlers[t])
}

// Dispatch calls the handlers of every intermediate event in events. Raw
// events are skipped. Handlers removed while dispatching one event still
// see that event.
func (d *Dispatcher) Dispatch(events []Event) {
	for _, ev := range events {
		if ev.Kind != EventIntermediate {
			continue
		}
		hs := d.handlers[ev.Intermediate.Type]
		if len(hs) == 0 {
			continue
		}
		snapshot := append([]handler(nil), hs...)
		for _, h := range snapshot {
			h.fn(ev.Intermediate)
		}
	}
}
