package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"blockies/pkg/identicon"
)

// ErrInvalidScale reports a non-positive pixel scale.
var ErrInvalidScale = errors.New("invalid scale")

// Palette returns the paint colors indexed by cell value: background,
// foreground, spot.
func Palette(ic *identicon.Identicon) []color.RGBA {
	return []color.RGBA{
		toRGBA(ic.BgColor()),
		toRGBA(ic.Color()),
		toRGBA(ic.SpotColor()),
	}
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Cells paints one pixel per cell.
func Cells(ic *identicon.Identicon) *image.RGBA {
	size := ic.Size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillPaletteRGBA(img.Pix, ic.Bitmap(), Palette(ic))
	return img
}

// Paint renders ic as a (size*scale)² image where every cell becomes a
// scale×scale block: color for 1, spot color for 2, background for 0.
func Paint(ic *identicon.Identicon, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("paint: %w: %d", ErrInvalidScale, scale)
	}
	src := Cells(ic)
	if scale == 1 {
		return src, nil
	}
	side := ic.Size() * scale
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	// nearest-neighbour sampling at an integer ratio yields exact blocks
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
