package orbitshot

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and game loop started by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the logical screen size in pixels.
	Width, Height int
	// WindowScale multiplies the window size on desktop. 0 means 1.
	WindowScale float64
	// TPS overrides ticks per second. 0 keeps ebiten's default of 60.
	TPS int
	// ShowFPS adds an FPS/TPS overlay to the scene.
	ShowFPS bool
	// Debug enables scene debug mode.
	Debug bool
}

// gameLoop adapts a Scene to ebiten.Game.
type gameLoop struct {
	scene  *Scene
	width  int
	height int
}

func (g *gameLoop) Update() error {
	return g.scene.Update()
}

func (g *gameLoop) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *gameLoop) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens a window and runs the scene until the window closes or an update
// returns an error. ebiten.Termination ends the loop without error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("orbitshot: invalid screen size %dx%d", cfg.Width, cfg.Height)
	}
	scale := cfg.WindowScale
	if scale <= 0 {
		scale = 1
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.ShowFPS {
		scene.Root().AddChild(NewFPSWidget())
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(float64(cfg.Width)*scale), int(float64(cfg.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&gameLoop{scene: scene, width: cfg.Width, height: cfg.Height})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
