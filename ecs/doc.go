// Package ecs bridges vitrine interaction events into a [Donburi] world.
//
// [NewDonburiStore] publishes every event a scene emits (pointer, hover,
// click) as a typed Donburi event and keeps an [Interaction] component per
// object that tracks its hover state and click count.
//
// Usage:
//
//	world := donburi.NewWorld()
//	store := ecs.NewDonburiStore(world)
//	gallery.SetEntityStore(store)
//	gallery.OnFrame = func() { ecs.InteractionEventType.ProcessEvents(world) }
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
