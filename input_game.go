package anima

import (
	"time"

	"github.com/phanxgames/anima/input"
)

// InputGame is a Game that polls a Source every frame, runs the batch
// through a Pipeline and hands the result to Handle. Handle returning false
// stops the game. A nil Handle keeps the game running forever.
type InputGame struct {
	Source   input.Source
	Pipeline *input.Pipeline
	Handle   func(events []input.Event, dt time.Duration) bool

	dispatcher *input.Dispatcher
	store      input.EventStore
}

// NewInputGame returns an InputGame reading from src through p.
func NewInputGame(src input.Source, p *input.Pipeline) *InputGame {
	return &InputGame{Source: src, Pipeline: p}
}

// SetDispatcher attaches d to the current pipeline and to every pipeline
// built by Reload.
func (g *InputGame) SetDispatcher(d *input.Dispatcher) {
	g.dispatcher = d
	g.Pipeline.SetDispatcher(d)
}

// SetEventStore attaches s to the current pipeline and to every pipeline
// built by Reload.
func (g *InputGame) SetEventStore(s input.EventStore) {
	g.store = s
	g.Pipeline.SetEventStore(s)
}

// Update implements Game.
func (g *InputGame) Update(dt time.Duration) bool {
	events := g.Pipeline.Process(g.Source.Poll(), dt)
	if g.Handle == nil {
		return true
	}
	return g.Handle(events, dt)
}

// Reload implements Reloader. The pipeline is rebuilt from cfg, so widget
// state such as a held button is dropped.
func (g *InputGame) Reload(cfg RunConfig) {
	p := cfg.Pipeline()
	p.SetDispatcher(g.dispatcher)
	p.SetEventStore(g.store)
	g.Pipeline = p
}
