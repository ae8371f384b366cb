package embers

import "math/rand/v2"

// Ember is a single decaying particle: it drifts, slows down, shrinks and
// cools until it expires.
type Ember struct {
	cfg          EmberConfig
	mote         mote
	nodes        []*Node
	created      float64
	lastUpdate   float64
	wobbleOffset float64
	fade         *Fade
}

// NewEmber creates an ember at position moving with velocity. now is the
// current frame time in milliseconds. position and velocity are copied.
func NewEmber(now float64, position, velocity Vec3, cfg EmberConfig) *Ember {
	n := NewQuad("ember", cfg.Size, cfg.Color)
	n.Position = position
	if cfg.Additive {
		n.BlendMode = BlendAdd
	}
	return &Ember{
		cfg:          cfg,
		mote:         mote{node: n, vel: velocity},
		nodes:        []*Node{n},
		created:      now,
		lastUpdate:   now,
		wobbleOffset: rand.Float64() * 10000,
	}
}

// Renderables returns the ember's single quad.
func (e *Ember) Renderables() []*Node {
	return e.nodes
}

// Update advances the ember to now.
func (e *Ember) Update(now float64) UpdateResult {
	delta := elapsed(e.lastUpdate, now)
	e.lastUpdate = now

	e.mote.step(&e.cfg.Motion, delta, now, e.wobbleOffset)

	if e.fade != nil {
		e.fade.Update(float32(delta))
	} else {
		e.fade = endFade(e.Renderables(), now, e.created, e.cfg.MaxAge, e.cfg.FadeOut)
	}
	return UpdateResult{}
}

// IsExpired reports whether the ember has outlived its MaxAge.
func (e *Ember) IsExpired(now float64) bool {
	return now-e.created > e.cfg.MaxAge
}

// Position returns the ember's current position.
func (e *Ember) Position() Vec3 {
	return e.mote.node.Position
}

// Velocity returns the ember's current velocity in units per second.
func (e *Ember) Velocity() Vec3 {
	return e.mote.vel
}

// Created returns the frame time the ember was created at.
func (e *Ember) Created() float64 {
	return e.created
}
