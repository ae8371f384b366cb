package embers

import (
	"math"
	"math/rand/v2"
)

// wobblePeriod is the time scale, in milliseconds, of the lateral sway.
const wobblePeriod = 500

// mote is one moving quad: a node plus its velocity in units per second.
type mote struct {
	node *Node
	vel  Vec3
}

// step advances the mote by delta seconds. now is the frame time in
// milliseconds and only drives the wobble phase.
//
// Every term is scaled by delta, including gravity and color drift, so two
// steps of 0.05s land where one step of 0.1s would to first order.
func (m *mote) step(mo *Motion, delta, now, wobbleOffset float64) {
	p := &m.node.Position
	p.X += m.vel.X * delta
	if mo.Wobble != 0 {
		p.X += mo.Wobble * math.Sin((wobbleOffset+now)/wobblePeriod) * delta * ReferenceTPS
	}
	p.Y += m.vel.Y * delta
	p.Z += m.vel.Z * delta

	m.node.Scale *= math.Pow(mo.Shrink, delta)

	m.vel = m.vel.Scale(math.Pow(mo.Drag, delta))
	m.vel.Y -= mo.Gravity * delta

	if mo.ColorLerp > 0 {
		m.node.Color = m.node.Color.Lerp(mo.Target, blendFactor(mo.ColorLerp, delta))
	}
}

// blendFactor converts a per-reference-frame blend fraction into the
// fraction covered over delta seconds.
func blendFactor(perFrame, delta float64) float64 {
	return 1 - math.Pow(1-perFrame, delta*ReferenceTPS)
}

// elapsed returns the seconds between two frame times in milliseconds.
func elapsed(from, to float64) float64 {
	return (to - from) / 1000
}

// RandomVelocity returns a velocity pointing in a uniformly random direction
// with a magnitude drawn from speed, plus lift units per second upwards.
func RandomVelocity(speed Range, lift float64) Vec3 {
	return randomDirection().Scale(speed.Random()).Add(Vec3{Y: lift})
}

// randomDirection returns a unit vector uniformly distributed on the sphere.
func randomDirection() Vec3 {
	u := rand.Float64()*2 - 1
	theta := rand.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - u*u)
	return Vec3{X: r * math.Cos(theta), Y: u, Z: r * math.Sin(theta)}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}
