// Package ecs provides ECS adapters for embers storage lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges storage events
// (added, expired, spawned) into a [Donburi] world as typed events.
// Subscribe to [LifecycleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	storage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
