package input

import (
	"time"

	"github.com/phanxgames/anima/internal/logging"
)

// Intermediate is a stateful filter stage. Process consumes a whole batch
// and returns a new one: raw events it handles are dropped, synthesized
// intermediate events are inserted, and everything else passes through in
// order. Implementations must be total: every batch yields a batch.
type Intermediate interface {
	Process(events []Event, dt time.Duration) []Event
}

// IntermediateFunc adapts an ordinary function to the Intermediate
// interface.
type IntermediateFunc func(events []Event, dt time.Duration) []Event

// Process calls f(events, dt).
func (f IntermediateFunc) Process(events []Event, dt time.Duration) []Event {
	return f(events, dt)
}

// Pipeline runs a fixed sequence of stages over each frame's batch. Stage
// order matters: a Cursor must run before the Buttons and SelectableAreas
// that consume its CursorPressed/CursorReleased events.
type Pipeline struct {
	stages     []Intermediate
	dispatcher *Dispatcher
	store      EventStore
	frame      uint64
}

// NewPipeline returns a pipeline running stages in the given order.
func NewPipeline(stages ...Intermediate) *Pipeline {
	return &Pipeline{stages: append([]Intermediate(nil), stages...)}
}

// Add appends a stage to the end of the pipeline.
func (p *Pipeline) Add(stage Intermediate) {
	p.stages = append(p.stages, stage)
}

// Stages returns a copy of the pipeline's stages.
func (p *Pipeline) Stages() []Intermediate {
	return append([]Intermediate(nil), p.stages...)
}

// SetDispatcher routes every intermediate event of each processed batch to
// d. Passing nil disables dispatch.
func (p *Pipeline) SetDispatcher(d *Dispatcher) {
	p.dispatcher = d
}

// SetEventStore forwards every intermediate event of each processed batch to
// s. Passing nil disables forwarding.
func (p *Pipeline) SetEventStore(s EventStore) {
	p.store = s
}

// Process runs every stage over events and returns the final batch, after
// handing its intermediate events to the dispatcher and event store.
func (p *Pipeline) Process(events []Event, dt time.Duration) []Event {
	p.frame++
	in := len(events)
	for _, stage := range p.stages {
		events = stage.Process(events, dt)
	}

	if logging.Debug() && (in > 0 || len(events) > 0) {
		logging.Logger().Debug("input: pipeline frame",
			"frame", p.frame, "in", in, "out", len(events), "stages", len(p.stages))
	}

	if p.store != nil {
		for _, ev := range events {
			if ev.Kind == EventIntermediate {
				p.store.EmitEvent(ev.Intermediate)
			}
		}
	}
	if p.dispatcher != nil {
		p.dispatcher.Dispatch(events)
	}
	return events
}
