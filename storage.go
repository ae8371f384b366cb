package embers

import (
	"fmt"
	"slices"
	"time"
)

// Surface is the display surface a Storage registers renderables with.
// Storage is its sole mutator: every Add is matched by exactly one Remove.
type Surface interface {
	Add(n *Node)
	Remove(n *Node)
}

// Storable is a self-updating, self-expiring entity managed by a Storage.
// Implementations must be comparable; pointer receivers are the norm.
type Storable interface {
	// Renderables returns the nodes owned by this storable. The set is stable
	// for the storable's whole life and the call has no side effects.
	Renderables() []*Node
	// Update advances the storable to now, in milliseconds on the frame
	// clock. Time must not decrease between calls.
	Update(now float64) UpdateResult
	// IsExpired reports whether the storable and its renderables should be
	// removed. Once true it stays true for every later time.
	IsExpired(now float64) bool
}

// UpdateResult carries the side effects of a Storable update.
type UpdateResult struct {
	// Spawned holds new storables to add once the current pass completes.
	Spawned []Storable
}

// Storage owns the active set of storables and keeps the surface's
// renderable set in step with it.
//
// Storage is not safe for concurrent use.
type Storage struct {
	surface Surface
	items   []Storable
	members map[Storable]struct{}
	staged  []Storable
	sink    EventSink
	debug   bool

	lastTime float64
	ticked   bool
}

// NewStorage creates an empty Storage registering renderables with surface.
func NewStorage(surface Surface) *Storage {
	if surface == nil {
		panic("embers: storage needs a surface")
	}
	return &Storage{
		surface: surface,
		members: make(map[Storable]struct{}),
	}
}

// Add appends s to the active set and registers its renderables.
// Panics if s is nil, already in the active set, or has expired before
// (its renderables are disposed).
func (st *Storage) Add(s Storable) {
	if s == nil {
		panic("embers: cannot add nil storable")
	}
	if _, ok := st.members[s]; ok {
		panic(fmt.Sprintf("embers: storable %T added twice", s))
	}
	renderables := s.Renderables()
	for _, n := range renderables {
		if n.IsDisposed() {
			panic(fmt.Sprintf("embers: storable %T has disposed node %q", s, n.Name))
		}
	}
	st.members[s] = struct{}{}
	st.items = append(st.items, s)
	for _, n := range renderables {
		st.surface.Add(n)
	}
	st.emit(LifecycleEvent{Type: EventAdded, Time: st.lastTime, Renderables: len(renderables)})
	if st.debug {
		debugCheckActive(len(st.items))
	}
}

// Update removes every storable expired at now, then advances the rest.
// Storables spawned during the pass are added after it completes, so they
// are first updated on the next tick. An expiring storable is never updated
// in the tick it expires.
//
// Panics if now is lower than the time of the previous call.
func (st *Storage) Update(now float64) {
	if st.ticked && now < st.lastTime {
		panic(fmt.Sprintf("embers: storage time went backwards (%v < %v)", now, st.lastTime))
	}
	st.lastTime = now
	st.ticked = true

	var stats tickStats
	var t0 time.Time

	if st.debug {
		t0 = time.Now()
	}

	stats.expired = st.removeExpired(now)

	if st.debug {
		stats.expireTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, s := range st.items {
		res := s.Update(now)
		st.staged = append(st.staged, res.Spawned...)
	}

	stats.spawned = len(st.staged)
	for i, child := range st.staged {
		st.emit(LifecycleEvent{Type: EventSpawned, Time: now, Renderables: len(child.Renderables())})
		st.Add(child)
		st.staged[i] = nil
	}
	st.staged = st.staged[:0]

	if st.debug {
		stats.updateTime = time.Since(t0)
		stats.time = now
		stats.active = len(st.items)
		st.debugLog(stats)
	}
}

// removeExpired drops every storable expired at now in one pass, keeping
// the insertion order of the survivors. It returns the number removed.
func (st *Storage) removeExpired(now float64) int {
	kept := st.items[:0]
	removed := 0
	for _, s := range st.items {
		if !s.IsExpired(now) {
			kept = append(kept, s)
			continue
		}
		st.release(s, true)
		st.emit(LifecycleEvent{Type: EventExpired, Time: now, Renderables: len(s.Renderables())})
		removed++
	}
	// Clear the tail so dropped storables can be collected.
	for i := len(kept); i < len(st.items); i++ {
		st.items[i] = nil
	}
	st.items = kept
	return removed
}

// release deregisters the renderables of s and forgets it. Expired
// storables also have their renderables disposed, so they can never be
// registered again.
func (st *Storage) release(s Storable, dispose bool) {
	for _, n := range s.Renderables() {
		st.surface.Remove(n)
		if dispose {
			n.Dispose()
		}
	}
	delete(st.members, s)
}

// Clear removes every storable regardless of age. Renderables are detached
// but not disposed, so a cleared storable may be added again.
func (st *Storage) Clear() {
	for i, s := range st.items {
		st.release(s, false)
		st.items[i] = nil
	}
	st.items = st.items[:0]
}

// Len returns the number of active storables.
func (st *Storage) Len() int {
	return len(st.items)
}

// Items returns a copy of the active set in insertion order.
func (st *Storage) Items() []Storable {
	return slices.Clone(st.items)
}

// SetEventSink sets the optional receiver of lifecycle events.
func (st *Storage) SetEventSink(sink EventSink) {
	st.sink = sink
}

// SetDebugMode enables or disables per-tick stats on stderr.
func (st *Storage) SetDebugMode(enabled bool) {
	st.debug = enabled
}

func (st *Storage) emit(e LifecycleEvent) {
	if st.sink != nil {
		st.sink.EmitLifecycle(e)
	}
}
