package embers

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is the overlay redraw period in milliseconds.
const overlayRefresh = 500

// overlay displays FPS, TPS and live counts in the top-left corner.
// The text is redrawn every overlayRefresh milliseconds.
type overlay struct {
	img        *ebiten.Image
	lastUpdate float64
	drawn      bool
}

func newOverlay() *overlay {
	// 140x64 is enough for four short lines of debug text.
	return &overlay{img: ebiten.NewImage(140, 64)}
}

func (o *overlay) update(now float64, st *Storage, sc *Scene) {
	if o.drawn && now-o.lastUpdate < overlayRefresh {
		return
	}
	o.lastUpdate = now
	o.drawn = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nStorables: %d\nNodes: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), st.Len(), sc.Len()))
}

func (o *overlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
