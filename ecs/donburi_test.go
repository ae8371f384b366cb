package ecs

import (
	"testing"

	"github.com/phanxgames/embers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// recordingSurface accepts every node; only the event flow matters here.
type recordingSurface struct{ nodes int }

func (r *recordingSurface) Add(*embers.Node)    { r.nodes++ }
func (r *recordingSurface) Remove(*embers.Node) { r.nodes-- }

func TestNewDonburiSink(t *testing.T) {
	assert.NotNil(t, NewDonburiSink(donburi.NewWorld()))
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	assert.Implements(t, (*embers.EventSink)(nil), NewDonburiSink(donburi.NewWorld()))
}

func TestDonburiSink_EmitLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []embers.LifecycleEvent
	LifecycleEventType.Subscribe(world, func(w donburi.World, e embers.LifecycleEvent) {
		received = append(received, e)
	})

	sink.EmitLifecycle(embers.LifecycleEvent{Type: embers.EventAdded, Time: 10, Renderables: 64})
	sink.EmitLifecycle(embers.LifecycleEvent{Type: embers.EventExpired, Time: 20, Renderables: 64})

	// Events are queued until processed.
	LifecycleEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	assert.Equal(t, embers.EventAdded, received[0].Type)
	assert.Equal(t, 64, received[0].Renderables)
	assert.Equal(t, embers.EventExpired, received[1].Type)
	assert.Equal(t, 20.0, received[1].Time)
}

func TestDonburiSink_StorageLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	surface := &recordingSurface{}
	storage := embers.NewStorage(surface)
	storage.SetEventSink(NewDonburiSink(world))

	counts := map[embers.LifecycleEventType]int{}
	LifecycleEventType.Subscribe(world, func(w donburi.World, e embers.LifecycleEvent) {
		counts[e.Type]++
	})

	cfg := embers.DefaultConfig()
	storage.Add(embers.NewTrailer(0, embers.Vec3{}, embers.Vec3{}, cfg.Trailer))
	storage.Update(50)
	storage.Update(150) // trailer leaves one ember behind
	storage.Update(cfg.Trailer.MaxAge + 1)
	events.ProcessAllEvents(world)

	assert.Equal(t, 1, counts[embers.EventSpawned])
	assert.Equal(t, 2, counts[embers.EventAdded])
	assert.Equal(t, 1, counts[embers.EventExpired])
	assert.Equal(t, storage.Len(), surface.nodes, "one node per live storable")
}
