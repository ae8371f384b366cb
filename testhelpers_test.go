package embers

// spy is a Storable that records every call made to it.
type spy struct {
	nodes    []*Node
	expireAt float64
	updates  []float64
	// spawn, when set, is called on every update to produce children.
	spawn func(now float64) []Storable
}

func newSpy(expireAt float64, nodes int) *spy {
	s := &spy{expireAt: expireAt}
	for i := 0; i < nodes; i++ {
		s.nodes = append(s.nodes, NewQuad("spy", 1, ColorWhite))
	}
	return s
}

func (s *spy) Renderables() []*Node { return s.nodes }

func (s *spy) Update(now float64) UpdateResult {
	s.updates = append(s.updates, now)
	if s.spawn == nil {
		return UpdateResult{}
	}
	return UpdateResult{Spawned: s.spawn(now)}
}

func (s *spy) IsExpired(now float64) bool { return now >= s.expireAt }

// recordingSink collects lifecycle events.
type recordingSink struct {
	events []LifecycleEvent
}

func (r *recordingSink) EmitLifecycle(e LifecycleEvent) {
	r.events = append(r.events, e)
}

func (r *recordingSink) count(t LifecycleEventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// stillEmber returns an ember config without sway or fade, so motion is
// fully determined by the initial state.
func stillEmber() EmberConfig {
	cfg := DefaultEmberConfig()
	cfg.Motion.Wobble = 0
	cfg.FadeOut = 0
	return cfg
}

// registeredNodes reports whether the scene holds exactly the renderables
// of the storage's active set.
func registeredNodes(sc *Scene, st *Storage) bool {
	total := 0
	for _, s := range st.Items() {
		for _, n := range s.Renderables() {
			if !sc.Registered(n) {
				return false
			}
			total++
		}
	}
	return total == sc.Len()
}
