// Package ansi previews identicons in a terminal, two columns per cell.
package ansi

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"blockies/internal/core"
	"blockies/pkg/identicon"
)

// Color modes.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

var glyphs = [3]string{"  ", "##", "++"}

// Config holds parameters for the terminal encoder.
type Config struct {
	// Mode selects colored output: auto colors only when writing to a
	// terminal.
	Mode string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Mode: ModeAuto}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	switch v := cfg["color"]; v {
	case ModeAuto, ModeAlways, ModeNever:
		c.Mode = v
	}
	if cfg["plain"] == "true" {
		c.Mode = ModeNever
	}
	return c
}

// Encoder writes an identicon as terminal text.
type Encoder struct {
	cfg Config
}

// New returns an Encoder for cfg.
func New(cfg Config) *Encoder { return &Encoder{cfg: cfg} }

// Name returns the format identifier.
func (e *Encoder) Name() string { return "ansi" }

// Extension returns the file suffix.
func (e *Encoder) Extension() string { return "txt" }

// Encode writes ic to w. Colored output paints cell backgrounds with the
// identicon palette; plain output uses glyphs instead.
func (e *Encoder) Encode(w io.Writer, ic *identicon.Identicon) error {
	cells := glyphs
	if e.colored(w) {
		r := lipgloss.NewRenderer(w)
		if e.cfg.Mode == ModeAlways {
			r.SetColorProfile(termenv.TrueColor)
		}
		for i, c := range []identicon.Color{ic.BgColor(), ic.Color(), ic.SpotColor()} {
			cells[i] = swatch(r, c)
		}
	}

	bw := bufio.NewWriter(w)
	size := ic.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			bw.WriteString(cells[ic.At(x, y)])
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode ansi: %w", err)
	}
	return nil
}

func (e *Encoder) colored(w io.Writer) bool {
	switch e.cfg.Mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// swatch paints one cell. Fully transparent colors leave the terminal
// background showing; other alpha values are painted opaque.
func swatch(r *lipgloss.Renderer, c identicon.Color) string {
	n := c.NRGBA()
	if n.A == 0 {
		return "  "
	}
	hex := fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	return r.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func init() {
	core.Register("ansi", func(cfg map[string]string) core.Encoder {
		return New(FromMap(cfg))
	})
}
