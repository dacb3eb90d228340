// Package ecs provides ECS adapters for anima's input pipeline.
//
// The primary adapter is [NewDonburiStore], which publishes every
// intermediate input event (button, cursor and selectable-area events) into
// a [Donburi] world as a typed event. Subscribe to [IntermediateEventType]
// in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	pipeline.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
