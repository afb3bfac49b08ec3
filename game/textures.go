package game

import (
	"fmt"
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	tileWidth       = 64
	turretSize      = 32
	turretBarrelLen = 18
	firelineWidth   = 32
	firelineHeight  = 4
)

// Image files read from Options.AssetDir.
const (
	targetAsset   = "target.png"
	turretAsset   = "turret.png"
	firelineAsset = "fireline.png"
)

var (
	tileFill     = color.RGBA{0x3d, 0xa5, 0xd9, 0xff}
	tileEdge     = color.RGBA{0xe6, 0xf4, 0xfb, 0xff}
	turretBody   = color.RGBA{0x9a, 0x9a, 0xa8, 0xff}
	turretGun    = color.RGBA{0x5c, 0x5c, 0x6a, 0xff}
	firelineCore = color.RGBA{0xff, 0x40, 0x30, 0xff}
)

// textures are the generated images the scene draws.
type textures struct {
	tile     *ebiten.Image
	turret   *ebiten.Image
	fireline *ebiten.Image
}

func newTextures(o Options) textures {
	return textures{
		tile:     newTileImage(int(o.TargetThickness)),
		turret:   newTurretImage(),
		fireline: newFirelineImage(),
	}
}

// loadTextures reads the images from dir. The turret image must point up
// with its round body at the bottom, like the generated one.
func loadTextures(dir string) (textures, error) {
	var t textures
	files := []struct {
		name string
		dst  **ebiten.Image
	}{
		{targetAsset, &t.tile},
		{turretAsset, &t.turret},
		{firelineAsset, &t.fireline},
	}
	for _, f := range files {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, f.name))
		if err != nil {
			return textures{}, fmt.Errorf("load %s: %w", f.name, err)
		}
		*f.dst = img
	}
	return t, nil
}

// newTileImage is a bordered bar. Targets stretch it horizontally.
func newTileImage(thickness int) *ebiten.Image {
	img := ebiten.NewImage(tileWidth, thickness)
	img.Fill(tileFill)
	vector.StrokeRect(img, 1, 1, tileWidth-2, float32(thickness-2), 2, tileEdge, false)
	return img
}

// newTurretImage is a round base with a barrel pointing up, the direction of
// fire at angle 0.
func newTurretImage() *ebiten.Image {
	h := turretSize + turretBarrelLen
	img := ebiten.NewImage(turretSize, h)
	c := float32(turretSize) / 2
	vector.DrawFilledRect(img, c-3, 0, 6, float32(turretBarrelLen)+c, turretGun, true)
	vector.DrawFilledCircle(img, c, float32(turretBarrelLen)+c, c-1, turretBody, true)
	return img
}

// newFirelineImage is a bright beam; its origin sits on the left edge.
func newFirelineImage() *ebiten.Image {
	img := ebiten.NewImage(firelineWidth, firelineHeight)
	img.Fill(firelineCore)
	vector.DrawFilledRect(img, 0, 1, firelineWidth, 2, color.White, false)
	return img
}
