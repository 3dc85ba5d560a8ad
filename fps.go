package vitrine

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsOverlay draws FPS and TPS in the top-left corner.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
	dirty   bool
}

func (f *fpsOverlay) update(dt float64) {
	f.elapsed += dt
	if f.elapsed >= fpsRefresh {
		f.elapsed = 0
		f.dirty = true
	}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0".
		f.img = ebiten.NewImage(100, 32)
		f.dirty = true
	}
	if f.dirty {
		f.dirty = false
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
