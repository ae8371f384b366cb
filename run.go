package embers

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowOverlay draws FPS and live counts in the corner.
	ShowOverlay bool
	// Debug turns on debug mode for the scene and the storage: tree
	// operations on disposed nodes panic and tick stats go to stderr.
	Debug bool
	// Config tunes launches made by Show. nil uses DefaultConfig.
	Config *Config
	// Show, when set, is stepped every tick before input is processed.
	Show *Show
	// OnClick receives the backdrop point under the cursor for every
	// mouse button press, with the current frame time in milliseconds.
	OnClick func(world Vec3, button MouseButton, now float64)
	// OnUpdate, when set, is called once per tick after the storage update.
	// A non-nil error stops the game and is returned from Run.
	OnUpdate func(now float64) error
}

var mouseButtons = [...]struct {
	ours   MouseButton
	ebiten ebiten.MouseButton
}{
	{MouseButtonLeft, ebiten.MouseButtonLeft},
	{MouseButtonRight, ebiten.MouseButtonRight},
	{MouseButtonMiddle, ebiten.MouseButtonMiddle},
}

// game adapts a Scene and a Storage to ebiten.Game.
type game struct {
	scene   *Scene
	storage *Storage
	cfg     RunConfig
	start   time.Time
	overlay *overlay
}

// Run opens a window and drives storage from the ebiten game loop, drawing
// scene every frame. It blocks until the window is closed.
func Run(scene *Scene, storage *Storage, cfg RunConfig) error {
	g, err := newGame(scene, storage, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("embers: run: %w", err)
	}
	return nil
}

// newGame validates cfg and prepares scene and storage for the loop.
func newGame(scene *Scene, storage *Storage, cfg RunConfig) (*game, error) {
	if cfg.Config == nil {
		def := DefaultConfig()
		cfg.Config = &def
	} else if err := cfg.Config.Validate(); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("embers: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
		storage.SetDebugMode(true)
	}

	g := &game{scene: scene, storage: storage, cfg: cfg, start: time.Now()}
	if cfg.ShowOverlay {
		g.overlay = newOverlay()
	}
	scene.Projection.Width = float64(cfg.Width)
	scene.Projection.Height = float64(cfg.Height)
	return g, nil
}

// now returns the monotonic frame clock in milliseconds.
func (g *game) now() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

func (g *game) Update() error {
	now := g.now()

	if g.cfg.Show != nil {
		g.cfg.Show.Step(now, g.storage, g.cfg.Config)
	}
	if g.cfg.OnClick != nil {
		for _, b := range mouseButtons {
			if !inpututil.IsMouseButtonJustPressed(b.ebiten) {
				continue
			}
			x, y := ebiten.CursorPosition()
			g.cfg.OnClick(g.scene.Projection.Unproject(float64(x), float64(y)), b.ours, now)
		}
	}

	g.storage.Update(now)

	if g.overlay != nil {
		g.overlay.update(now, g.storage, g.scene)
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(now)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Projection.Width = float64(outsideWidth)
	g.scene.Projection.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}
