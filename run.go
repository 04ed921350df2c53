package pixelgrid

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run. Zero fields take the
// defaults noted on each.
type RunConfig struct {
	Title  string // defaults to "pixelgrid"
	Width  int    // defaults to 640
	Height int    // defaults to 480

	// ClearColor fills the screen before every frame. The zero value is
	// opaque black.
	ClearColor Color

	// ShowFPS adds an FPS/TPS readout in the top-left corner.
	ShowFPS bool

	// Debug turns on the scene's debug mode.
	Debug bool
}

// ErrQuit can be returned from an update callback to end Run without an
// error.
var ErrQuit = errors.New("pixelgrid: quit")

// Run opens a window and drives scene until the window closes or the
// scene's update callback returns an error. ErrQuit is reported as nil.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "pixelgrid"
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = ColorBlack
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&game{scene: scene, cfg: cfg})
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.toRGBA())
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
