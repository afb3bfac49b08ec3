// Package ecs bridges orbitshot pointer events into a [Donburi] world.
//
// [NewDonburiStore] publishes every scene press and release as an
// [orbitshot.InteractionEvent]. Presses that hit no entity arrive with
// EntityID 0, so systems can treat them as global input. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
