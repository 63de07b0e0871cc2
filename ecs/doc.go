// Package ecs provides ECS adapters for coverflow's carousel events.
//
// The primary adapter is [NewDonburiStore], which bridges carousel events
// (selection changes, alignment start and finish, item clicks) into a
// [Donburi] world as typed events. Subscribe to [CarouselEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	carousel.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
