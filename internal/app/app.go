//go:build ebiten

package app

import (
	"log"

	"blockies/internal/render"
	"blockies/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth     = 280
	minHUDHeight = 260
)

// Game adapts a viewer Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *log.Logger

	scale int
}

// New constructs a Game showing the session's identicon at scale pixels
// per cell.
func New(session *Session, scale int, logger *log.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		session: session,
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(hudWidth),
		logger:  logger,
		scale:   scale,
	}
	g.refresh()
	return g
}

// WindowSize returns the outer size the window needs for the current grid.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

func (g *Game) refresh() {
	ic := g.session.Identicon()
	if g.painter == nil || g.painter.Size() != ic.Size() {
		g.painter = render.NewGridPainter(ic.Size())
	}
	g.painter.Upload(ic)
	g.hud.SetSnapshot(g.session.Snapshot())
	ebiten.SetWindowTitle("blockies: " + g.session.Seed())
}

func (g *Game) apply(err error) {
	if err != nil {
		g.logger.Printf("viewer: %v", err)
		return
	}
	g.refresh()
}

// Update handles key presses and advances the slideshow.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleSlideshow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.apply(g.session.NextSeed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.apply(g.session.Restore())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.resize(+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.resize(-1)
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	changed, err := g.session.Tick()
	if err != nil {
		g.logger.Printf("viewer: %v", err)
	} else if changed {
		g.refresh()
	}
	return nil
}

func (g *Game) resize(delta int) {
	before := g.session.Size()
	g.apply(g.session.Resize(delta))
	if g.session.Size() != before {
		ebiten.SetWindowSize(g.WindowSize())
	}
}

// Draw renders the identicon, the enabled guides and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.painter.Size())
	}
	side := g.painter.Size() * g.scale
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, side, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.session.Size() * g.scale
	h := side
	if h < minHUDHeight {
		h = minHUDHeight
	}
	return side + g.hud.Width(), h
}
