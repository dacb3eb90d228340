package ecs

import (
	"github.com/phanxgames/anima/input"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// IntermediateEventType is the Donburi event type for intermediate input
// events. Events are queued on publish and delivered by ProcessEvents.
var IntermediateEventType = events.NewEventType[input.IntermediateEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an input.EventStore backed by a Donburi world.
func NewDonburiStore(world donburi.World) input.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event input.IntermediateEvent) {
	IntermediateEventType.Publish(s.world, event)
}

// OnIntermediate subscribes fn to intermediate events of type t only.
func OnIntermediate(world donburi.World, t input.IntermediateType, fn func(donburi.World, input.IntermediateEvent)) {
	IntermediateEventType.Subscribe(world, func(w donburi.World, e input.IntermediateEvent) {
		if e.Type == t {
			fn(w, e)
		}
	})
}
