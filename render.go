package embers

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// WhitePixel is a 1x1 white image scaled and tinted to draw every quad.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Projection is a fixed perspective camera on the +z axis looking at the
// origin, with y up. Width and Height are the viewport size in pixels.
type Projection struct {
	// Distance from the camera to the z=0 backdrop plane.
	Distance float64
	// FOV is the vertical field of view in degrees.
	FOV    float64
	Width  float64
	Height float64
}

// DefaultProjection returns a 75° camera 500 units from the backdrop with an
// 800x600 viewport.
func DefaultProjection() Projection {
	return Projection{Distance: 500, FOV: 75, Width: 800, Height: 600}
}

// focal returns the focal length in pixels.
func (p Projection) focal() float64 {
	return (p.Height / 2) / math.Tan(p.FOV*math.Pi/360)
}

// Project maps a world position to screen pixels. scale is the number of
// pixels per world unit at that depth. ok is false for points at or behind
// the camera.
func (p Projection) Project(v Vec3) (x, y, scale float64, ok bool) {
	depth := p.Distance - v.Z
	if depth <= 0 {
		return 0, 0, 0, false
	}
	scale = p.focal() / depth
	return p.Width/2 + v.X*scale, p.Height/2 - v.Y*scale, scale, true
}

// Unproject returns the point on the z=0 backdrop plane under the screen
// pixel (x, y).
func (p Projection) Unproject(x, y float64) Vec3 {
	k := p.Distance / p.focal()
	return Vec3{X: (x - p.Width/2) * k, Y: (p.Height/2 - y) * k}
}

// drawItem is one resolved quad, ready to submit.
type drawItem struct {
	node  *Node
	pos   Vec3
	alpha float64
}

// collect appends every visible descendant of n to buf with world positions
// and inherited alpha resolved.
func (s *Scene) collect(buf []drawItem, n *Node, offset Vec3, alpha float64) []drawItem {
	for _, child := range n.children {
		pos := offset.Add(child.Position)
		a := alpha * child.Alpha
		if child.Visible && a > 0 {
			buf = append(buf, drawItem{node: child, pos: pos, alpha: a})
		}
		buf = s.collect(buf, child, pos, a)
	}
	return buf
}

// sortByDepth orders items farthest first. The sort is stable so quads at
// equal depth keep tree order.
func sortByDepth(items []drawItem) {
	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.pos.Z < b.pos.Z:
			return -1
		case a.pos.Z > b.pos.Z:
			return 1
		default:
			return 0
		}
	})
}

// drawQuad submits one quad centered on its projected position.
func (s *Scene) drawQuad(screen *ebiten.Image, d *drawItem) {
	x, y, scale, ok := s.Projection.Project(d.pos)
	if !ok {
		return
	}
	px := d.node.Scale * scale
	if px <= 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(px, px)
	op.GeoM.Translate(x-px/2, y-px/2)
	c := d.node.Color
	a := float32(d.alpha)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	op.Blend = d.node.BlendMode.EbitenBlend()
	screen.DrawImage(WhitePixel, &op)
}
