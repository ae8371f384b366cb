package embers

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates the Alpha of a group of nodes towards a target value.
// Call Update(dt) with elapsed seconds; once every node is disposed, or the
// tween finishes, Done is set and further updates are no-ops.
type Fade struct {
	tween *gween.Tween
	nodes []*Node
	Done  bool
}

// NewFade creates a fade from the current alpha of the first node to the
// given value over duration seconds using the easing function.
func NewFade(nodes []*Node, to float64, duration float32, fn ease.TweenFunc) *Fade {
	from := 1.0
	if len(nodes) > 0 {
		from = nodes[0].Alpha
	}
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		nodes: nodes,
		Done:  len(nodes) == 0,
	}
}

// Update advances the fade by dt seconds and writes the alpha to every node.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}

	live := 0
	val, finished := f.tween.Update(dt)
	for _, n := range f.nodes {
		if n.IsDisposed() {
			continue
		}
		n.Alpha = float64(val)
		live++
	}
	f.Done = finished || live == 0
}

// endFade starts the end-of-life fade for nodes when the remaining life
// drops to fadeOut milliseconds. It returns nil while the fade is not due.
func endFade(nodes []*Node, now, created, maxAge, fadeOut float64) *Fade {
	if fadeOut <= 0 {
		return nil
	}
	remaining := created + maxAge - now
	if remaining > fadeOut || remaining <= 0 {
		return nil
	}
	return NewFade(nodes, 0, float32(remaining/1000), ease.InQuad)
}
