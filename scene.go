package embers

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

const defaultRegistryCap = 1024

// Scene is the ebiten-backed display surface. It owns the node tree, the
// registry of nodes added through the Surface interface, and draw buffers.
type Scene struct {
	root     *Node
	registry *intmap.Map[uint32, *Node]
	debug    bool

	// ClearColor fills the screen before nodes are drawn. A zero alpha leaves
	// the screen untouched.
	ClearColor Color

	// Projection maps world positions to screen pixels.
	Projection Projection

	drawBuf []drawItem
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:       NewContainer("root"),
		registry:   intmap.New[uint32, *Node](defaultRegistryCap),
		Projection: DefaultProjection(),
		drawBuf:    make([]drawItem, 0, defaultRegistryCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Add registers n and attaches it under the root.
// Panics if n is nil, disposed, or already registered.
func (s *Scene) Add(n *Node) {
	if n == nil {
		panic("embers: cannot register nil node")
	}
	if n.disposed {
		panic(fmt.Sprintf("embers: cannot register disposed node %q", n.Name))
	}
	if _, ok := s.registry.Get(n.ID); ok {
		panic(fmt.Sprintf("embers: node %q (ID %d) registered twice", n.Name, n.ID))
	}
	s.registry.Put(n.ID, n)
	s.root.AddChild(n)
	n.slot = len(s.root.children) - 1
}

// Remove deregisters n and detaches it from the tree.
// Panics if n is not registered.
func (s *Scene) Remove(n *Node) {
	if _, ok := s.registry.Get(n.ID); !ok {
		panic(fmt.Sprintf("embers: node %q (ID %d) is not registered", n.Name, n.ID))
	}
	s.registry.Del(n.ID)
	s.detach(n)
}

// detach removes n from the root by moving the last root child into its
// slot. Root children therefore do not keep insertion order. Falls back to
// a linear removal when the root was edited directly and the slot is stale.
func (s *Scene) detach(n *Node) {
	kids := s.root.children
	i := n.slot
	if n.Parent != s.root || i >= len(kids) || kids[i] != n {
		n.RemoveFromParent()
		return
	}
	last := len(kids) - 1
	kids[i] = kids[last]
	kids[i].slot = i
	kids[last] = nil
	s.root.children = kids[:last]
	n.Parent = nil
}

// Registered reports whether n is currently registered.
func (s *Scene) Registered(n *Node) bool {
	got, ok := s.registry.Get(n.ID)
	return ok && got == n
}

// Len returns the number of registered nodes.
func (s *Scene) Len() int {
	return s.registry.Len()
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access in tree operations panics.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Draw fills the screen with ClearColor and draws every visible node,
// farthest first.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.drawBuf = s.collect(s.drawBuf[:0], s.root, Vec3{}, 1)
	sortByDepth(s.drawBuf)
	for i := range s.drawBuf {
		s.drawQuad(screen, &s.drawBuf[i])
	}
}
