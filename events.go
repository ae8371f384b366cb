package embers

// EventSink is the interface for optional ECS integration.
// When set on a Storage, lifecycle events are forwarded to it.
type EventSink interface {
	EmitLifecycle(event LifecycleEvent)
}

// LifecycleEventType identifies a kind of storage lifecycle event.
type LifecycleEventType uint8

const (
	EventAdded   LifecycleEventType = iota // fires after a storable's renderables are registered
	EventExpired                           // fires after an expired storable's renderables are removed
	EventSpawned                           // fires when a storable's update produced a child, before it is added
)

// String returns the event type name.
func (t LifecycleEventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventExpired:
		return "expired"
	case EventSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// LifecycleEvent carries storage lifecycle data for the ECS bridge.
type LifecycleEvent struct {
	Type LifecycleEventType
	// Time is the frame time of the tick that produced the event. Adds made
	// between ticks carry the time of the most recent tick.
	Time float64
	// Renderables is the number of nodes registered or removed.
	Renderables int
}
