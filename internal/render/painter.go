//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"blockies/pkg/identicon"
)

// GridPainter keeps an ebiten image holding one pixel per identicon cell.
type GridPainter struct {
	size int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a size×size grid.
func NewGridPainter(size int) *GridPainter {
	return &GridPainter{size: size, img: ebiten.NewImage(size, size), buf: make([]byte, 4*size*size)}
}

// Upload replaces the painter pixels with ic. Identicons of another size
// are ignored; callers make a new painter when the size changes.
func (gp *GridPainter) Upload(ic *identicon.Identicon) {
	if ic.Size() != gp.size {
		return
	}
	fillPaletteRGBA(gp.buf, ic.Bitmap(), Palette(ic))
	gp.img.WritePixels(gp.buf)
}

// Blit draws the uploaded image onto dst scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid side length.
func (gp *GridPainter) Size() int { return gp.size }
