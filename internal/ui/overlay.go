//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	gridLineColor   = color.RGBA{R: 128, G: 128, B: 128, A: 110}
	mirrorAxisColor = color.RGBA{R: 255, G: 64, B: 160, A: 200}
)

// Overlay draws optional guides over the identicon: cell grid lines and the
// mirror axis.
type Overlay struct {
	scale      int
	showGrid   bool
	showMirror bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the guides: G for grid lines, M for the mirror axis.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showMirror = !o.showMirror
	}
}

// Draw renders the enabled guides for a size×size grid.
func (o *Overlay) Draw(screen *ebiten.Image, size int) {
	if size <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	side := float64(size * scale)

	if o.showGrid && scale > 2 {
		for i := 1; i < size; i++ {
			p := float64(i * scale)
			o.drawLine(screen, p, 0, p, side, 1, gridLineColor)
			o.drawLine(screen, 0, p, side, p, 1, gridLineColor)
		}
	}
	if o.showMirror {
		// the drawn half is ceil(size/2) wide; for odd sizes the axis runs
		// through the middle of the centre column
		x := float64(size) / 2 * float64(scale)
		thickness := math.Max(1, float64(scale)/6)
		o.drawLine(screen, x, 0, x, side, thickness, mirrorAxisColor)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
