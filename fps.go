package orbitshot

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is the widget's redraw interval in seconds.
const fpsRefresh = 0.5

// NewFPSWidget creates a sprite that displays the current FPS and TPS in the
// top-left corner. Add it to the scene root.
func NewFPSWidget() *Node {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	node := NewSprite("fps_widget", img)
	node.ZIndex = 1 << 20

	elapsed := fpsRefresh
	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < fpsRefresh {
			return
		}
		elapsed = 0

		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	return node
}
