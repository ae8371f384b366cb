package embers

// nodeIDCounter is a plain counter (no atomic, embers is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a renderable handle: a camera-facing quad positioned in 3D space.
// Nodes are created by storables and registered with a Surface by Storage;
// storables never touch the surface themselves.
//
// Children are positioned relative to their parent and are drawn with it.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position Vec3
	Scale    float64

	// Appearance
	Color     Color
	Alpha     float64
	Visible   bool
	BlendMode BlendMode

	// slot is the node's index under the scene root, kept by Scene.
	slot     int
	disposed bool
}

// NewQuad creates a visible quad of the given edge length and tint.
func NewQuad(name string, size float64, c Color) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		Scale:   size,
		Color:   c,
		Alpha:   1,
		Visible: true,
	}
}

// NewContainer creates an invisible node used to group children.
func NewContainer(name string) *Node {
	return &Node{
		ID:    nextNodeID(),
		Name:  name,
		Scale: 1,
		Color: ColorWhite,
		Alpha: 1,
	}
}

// WorldPosition returns the node's position with all ancestor offsets applied.
func (n *Node) WorldPosition() Vec3 {
	p := n.Position
	for a := n.Parent; a != nil; a = a.Parent {
		p = p.Add(a.Position)
	}
	return p
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("embers: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("embers: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("embers: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
