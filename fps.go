package anima

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is rebuilt.
const fpsRefresh = 500 * time.Millisecond

// fpsOverlay draws the current FPS and TPS in the top-left corner of the
// window. The text is rebuilt about twice a second.
type fpsOverlay struct {
	fps, tps func() float64

	sinceRefresh time.Duration
	text         string
	img          *ebiten.Image
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{fps: ebiten.ActualFPS, tps: ebiten.ActualTPS}
}

// update advances the refresh timer and reports whether the text changed.
func (o *fpsOverlay) update(dt time.Duration) bool {
	o.sinceRefresh += dt
	if o.text != "" && o.sinceRefresh < fpsRefresh {
		return false
	}
	o.sinceRefresh = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", o.fps(), o.tps())
	return true
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 fits "FPS: 60.0\nTPS: 60.0".
		o.img = ebiten.NewImage(100, 32)
	}
	o.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
