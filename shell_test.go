package embers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellExpiresAllEmbersInOneTick(t *testing.T) {
	sc := NewScene()
	st := NewStorage(sc)
	cfg := DefaultConfig().Shell
	require.Equal(t, 64, cfg.Count)

	shell := NewShell(0, Vec3{X: 10, Y: 20}, cfg)
	st.Add(shell)
	assert.Equal(t, 64, shell.Len())
	assert.Equal(t, 64, sc.Len())

	st.Update(5000)
	st.Update(cfg.Ember.MaxAge)
	assert.Equal(t, 64, sc.Len(), "shell must survive until strictly past MaxAge")

	st.Update(cfg.Ember.MaxAge + 1)
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, 0, st.Len())
}

func TestShellEmbersMoveIndependently(t *testing.T) {
	cfg := DefaultConfig().Shell
	cfg.Ember.Motion.Gravity = 0
	shell := NewShellWithVelocities(0, Vec3{}, []Vec3{{X: 10}, {X: -10}, {Y: 20}}, cfg)
	require.Equal(t, 3, shell.Len())

	shell.Update(100)

	nodes := shell.Renderables()
	assert.InDelta(t, 1, nodes[0].Position.X, eps)
	assert.InDelta(t, -1, nodes[1].Position.X, eps)
	assert.InDelta(t, 2, nodes[2].Position.Y, eps)
	assert.InDelta(t, nodes[0].Scale, nodes[2].Scale, eps)
}

func TestShellStartsAtOrigin(t *testing.T) {
	origin := Vec3{X: 5, Y: -5, Z: 1}
	shell := NewShell(0, origin, DefaultConfig().Shell)
	for _, n := range shell.Renderables() {
		assert.Equal(t, origin, n.Position)
	}
	// Each ember owns its own node.
	nodes := shell.Renderables()
	assert.NotSame(t, nodes[0], nodes[1])
}

func TestShellRandomVelocitiesHaveLift(t *testing.T) {
	cfg := DefaultConfig().Shell
	cfg.Ember.Motion.Gravity = 0
	cfg.Ember.Motion.Drag = 1
	shell := NewShell(0, Vec3{}, cfg)
	shell.Update(1000)

	// Speed is at most 100 and lift is 50, so no ember sinks below -50 or
	// rises above 150 in the first second.
	for _, n := range shell.Renderables() {
		assert.GreaterOrEqual(t, n.Position.Y, -50.0-eps)
		assert.LessOrEqual(t, n.Position.Y, 150.0+eps)
	}
}

func TestShellFadesTogether(t *testing.T) {
	cfg := DefaultConfig().Shell
	cfg.Count = 4
	cfg.Ember.MaxAge = 1000
	cfg.Ember.FadeOut = 500
	shell := NewShell(0, Vec3{}, cfg)

	shell.Update(500)
	shell.Update(750)
	nodes := shell.Renderables()
	for _, n := range nodes {
		assert.Less(t, n.Alpha, 1.0)
		assert.Equal(t, nodes[0].Alpha, n.Alpha)
	}
}
