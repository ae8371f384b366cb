package embers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuadDefaults(t *testing.T) {
	n := NewQuad("spark", 2, ColorWhite)
	assert.NotZero(t, n.ID)
	assert.Equal(t, "spark", n.Name)
	assert.Equal(t, 2.0, n.Scale)
	assert.Equal(t, 1.0, n.Alpha)
	assert.True(t, n.Visible)
	assert.Equal(t, BlendNormal, n.BlendMode)
}

func TestNodeIDsAreUnique(t *testing.T) {
	a := NewQuad("a", 1, ColorWhite)
	b := NewContainer("b")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewContainerIsInvisible(t *testing.T) {
	assert.False(t, NewContainer("c").Visible)
}

func TestAddChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewQuad("child", 1, ColorWhite)
	parent.AddChild(child)

	assert.Same(t, parent, child.Parent)
	assert.Equal(t, []*Node{child}, parent.Children())
	assert.Equal(t, 1, parent.NumChildren())
}

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewQuad("child", 1, ColorWhite)
	a.AddChild(child)
	b.AddChild(child)

	assert.Equal(t, 0, a.NumChildren())
	assert.Same(t, b, child.Parent)
}

func TestAddChildMisusePanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)

	assert.Panics(t, func() { a.AddChild(nil) })
	assert.Panics(t, func() { b.AddChild(a) }, "cycle")
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewContainer("a")
	child := NewQuad("child", 1, ColorWhite)
	assert.Panics(t, func() { a.RemoveChild(child) })
}

func TestRemoveFromParentWithoutParent(t *testing.T) {
	n := NewQuad("n", 1, ColorWhite)
	n.RemoveFromParent()
	assert.Nil(t, n.Parent)
}

func TestRemoveChildKeepsOrder(t *testing.T) {
	p := NewContainer("p")
	a := NewQuad("a", 1, ColorWhite)
	b := NewQuad("b", 1, ColorWhite)
	c := NewQuad("c", 1, ColorWhite)
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)

	p.RemoveChild(b)

	assert.Equal(t, []*Node{a, c}, p.Children())
	assert.Nil(t, b.Parent)
}

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewQuad("leaf", 1, ColorWhite)
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()

	assert.True(t, mid.IsDisposed())
	assert.True(t, leaf.IsDisposed())
	assert.Equal(t, 0, root.NumChildren())
	assert.NotPanics(t, mid.Dispose, "second call is a no-op")
}

func TestWorldPosition(t *testing.T) {
	a := NewContainer("a")
	a.Position = Vec3{X: 1, Y: 2, Z: 3}
	b := NewContainer("b")
	b.Position = Vec3{X: 10}
	c := NewQuad("c", 1, ColorWhite)
	c.Position = Vec3{Y: 100}
	a.AddChild(b)
	b.AddChild(c)

	assert.Equal(t, Vec3{X: 11, Y: 102, Z: 3}, c.WorldPosition())
}

func TestDebugDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	d := NewQuad("d", 1, ColorWhite)
	d.Dispose()
	assert.Panics(t, func() { NewContainer("p").AddChild(d) })
}
