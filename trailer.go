package embers

// Trailer is a fast particle that leaves a motionless ember behind it every
// Interval milliseconds of simulation time.
type Trailer struct {
	cfg        TrailerConfig
	mote       mote
	nodes      []*Node
	created    float64
	lastUpdate float64
	lastEmber  float64
}

// NewTrailer creates a trailer at position moving with velocity. now is the
// current frame time in milliseconds. position and velocity are copied.
func NewTrailer(now float64, position, velocity Vec3, cfg TrailerConfig) *Trailer {
	n := NewQuad("trailer", cfg.Size, cfg.Color)
	n.Position = position
	n.BlendMode = BlendAdd
	return &Trailer{
		cfg:        cfg,
		mote:       mote{node: n, vel: velocity},
		nodes:      []*Node{n},
		created:    now,
		lastUpdate: now,
		lastEmber:  now,
	}
}

// Renderables returns the trailer's single quad.
func (t *Trailer) Renderables() []*Node {
	return t.nodes
}

// Update advances the trailer to now. When more than Interval milliseconds
// have passed since the last ember, it returns a new ember at the trailer's
// current position.
func (t *Trailer) Update(now float64) UpdateResult {
	delta := elapsed(t.lastUpdate, now)
	t.lastUpdate = now

	t.mote.step(&t.cfg.Motion, delta, now, 0)

	if now-t.lastEmber > t.cfg.Interval {
		t.lastEmber = now
		ember := NewEmber(now, t.mote.node.WorldPosition(), Vec3{}, t.cfg.Ember)
		return UpdateResult{Spawned: []Storable{ember}}
	}
	return UpdateResult{}
}

// IsExpired reports whether the trailer has outlived its MaxAge.
func (t *Trailer) IsExpired(now float64) bool {
	return now-t.created > t.cfg.MaxAge
}

// Position returns the trailer's current position.
func (t *Trailer) Position() Vec3 {
	return t.mote.node.Position
}
