package coverflow

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often in seconds the FPS readout is redrawn.
const fpsRefresh = 0.5

// FPSOverlay displays the current FPS and TPS on top of the carousel.
// It renders into a small internal image with ebitenutil.DebugPrint and only
// redraws it about twice a second.
type FPSOverlay struct {
	// X and Y place the readout on the screen.
	X, Y float64

	img   *ebiten.Image
	since float64
	text  string
	dirty bool
}

// NewFPSOverlay creates a readout that refreshes on its first Update.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{since: fpsRefresh}
}

// Update advances the refresh timer by dt seconds and reports whether the
// text was refreshed.
func (o *FPSOverlay) Update(dt float64) bool {
	o.since += dt
	if o.since < fpsRefresh {
		return false
	}
	o.since = 0
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	o.dirty = true
	return true
}

// Text returns the current readout.
func (o *FPSOverlay) Text() string {
	return o.text
}

// Draw draws the readout onto screen.
func (o *FPSOverlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
		o.dirty = true
	}
	if o.dirty {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, o.text)
		o.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.X, o.Y)
	screen.DrawImage(o.img, op)
}
