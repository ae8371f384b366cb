package ecs

import (
	"github.com/phanxgames/embers"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for embers lifecycle events.
var LifecycleEventType = events.NewEventType[embers.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on LifecycleEventType and delivered by
// events.ProcessAllEvents or LifecycleEventType.ProcessEvents.
func NewDonburiSink(world donburi.World) embers.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitLifecycle(event embers.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
