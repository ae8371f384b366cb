// Package term draws embers storables into a terminal using tcell.
package term

import (
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/embers"
)

// cellAspect is the height/width ratio of a terminal cell. Horizontal
// positions are stretched by it so bursts stay round.
const cellAspect = 2

// Surface is an embers.Surface that paints registered nodes as terminal
// cells. It keeps insertion order so overlapping nodes draw deterministically.
type Surface struct {
	nodes []*embers.Node
	index map[*embers.Node]int
}

// NewSurface creates an empty terminal surface.
func NewSurface() *Surface {
	return &Surface{index: make(map[*embers.Node]int)}
}

// Add registers n. Panics if n is already registered.
func (s *Surface) Add(n *embers.Node) {
	if _, ok := s.index[n]; ok {
		panic(fmt.Sprintf("term: node %q registered twice", n.Name))
	}
	s.index[n] = len(s.nodes)
	s.nodes = append(s.nodes, n)
}

// Remove deregisters n. Panics if n is not registered.
func (s *Surface) Remove(n *embers.Node) {
	i, ok := s.index[n]
	if !ok {
		panic(fmt.Sprintf("term: node %q is not registered", n.Name))
	}
	s.nodes = slices.Delete(s.nodes, i, i+1)
	delete(s.index, n)
	for j := i; j < len(s.nodes); j++ {
		s.index[s.nodes[j]] = j
	}
}

// Len returns the number of registered nodes.
func (s *Surface) Len() int {
	return len(s.nodes)
}

// Viewport returns proj resized to the screen, with horizontal pixels
// standing for half-width cells.
func Viewport(screen tcell.Screen, proj embers.Projection) embers.Projection {
	w, h := screen.Size()
	proj.Width = float64(w) / cellAspect
	proj.Height = float64(h)
	return proj
}

// CellToWorld maps a terminal cell to the backdrop point under it.
func CellToWorld(screen tcell.Screen, proj embers.Projection, x, y int) embers.Vec3 {
	return Viewport(screen, proj).Unproject(float64(x)/cellAspect, float64(y))
}

// Draw clears the screen and paints every visible node. It does not call
// Show.
func (s *Surface) Draw(screen tcell.Screen, proj embers.Projection) {
	screen.Clear()
	vp := Viewport(screen, proj)
	w, h := screen.Size()
	for _, n := range s.nodes {
		if !n.Visible || n.Alpha <= 0 {
			continue
		}
		px, py, scale, ok := vp.Project(n.WorldPosition())
		if !ok {
			continue
		}
		x, y := int(math.Floor(px*cellAspect)), int(math.Floor(py))
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		screen.SetContent(x, y, glyph(n.Scale*scale), nil, style(n))
	}
}

// glyph picks a block rune by on-screen size in cells.
func glyph(cells float64) rune {
	switch {
	case cells >= 1:
		return '█'
	case cells >= 0.5:
		return '▪'
	case cells >= 0.2:
		return '•'
	default:
		return '·'
	}
}

func style(n *embers.Node) tcell.Style {
	c := n.Color
	a := n.Alpha
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		channel(c.R*a), channel(c.G*a), channel(c.B*a),
	))
}

func channel(v float64) int32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int32(v*255 + 0.5)
}
