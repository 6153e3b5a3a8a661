//go:build ebiten

package ui

import (
	"image/color"

	"blockies/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	headerBaseline = 13
	lineHeight     = 18
	groupSpacing   = 10
	swatchSize     = 12
	valueOffset    = 96
)

var (
	panelBg    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerFg   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFg    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueFg    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	swatchEdge = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

// HUD renders the parameter panel to the right of the identicon.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	pixel      *ebiten.Image
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetSnapshot replaces the parameters shown on the panel.
func (h *HUD) SetSnapshot(s core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.snapshot = s
}

// Draw paints the panel with its left edge at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBg)
	h.drawSnapshot()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerFg)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelFg)
			x := panelPadding + valueOffset
			if p.Swatch != nil {
				h.drawSwatch(x, y-swatchSize+2, p.Swatch)
				x += swatchSize + 6
			}
			text.Draw(h.panel, clip(p.Value, (h.width-x-panelPadding)/face.Advance), face, x, y, valueFg)
			y += lineHeight
		}
		y += groupSpacing
	}
}

func (h *HUD) drawSwatch(x, y int, c color.Color) {
	if h.pixel == nil {
		return
	}
	h.fillRect(x-1, y-1, swatchSize+2, swatchSize+2, swatchEdge)
	h.fillRect(x, y, swatchSize, swatchSize, color.RGBAModel.Convert(c).(color.RGBA))
}

func (h *HUD) fillRect(x, y, w, ht int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(ht))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}
