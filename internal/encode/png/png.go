// Package png encodes identicons as PNG images.
package png

import (
	"fmt"
	"image/png"
	"io"
	"strconv"

	"blockies/internal/core"
	"blockies/internal/render"
	"blockies/pkg/identicon"
)

// Config holds parameters for the PNG encoder.
type Config struct {
	Scale int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Scale: 4}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	return c
}

// Encoder paints identicons with render.Paint and writes them as PNG.
type Encoder struct {
	cfg Config
}

// New returns an Encoder for cfg.
func New(cfg Config) *Encoder { return &Encoder{cfg: cfg} }

// Name returns the format identifier.
func (e *Encoder) Name() string { return "png" }

// Extension returns the file suffix.
func (e *Encoder) Extension() string { return "png" }

// Encode writes ic to w.
func (e *Encoder) Encode(w io.Writer, ic *identicon.Identicon) error {
	img, err := render.Paint(ic, e.cfg.Scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func init() {
	core.Register("png", func(cfg map[string]string) core.Encoder {
		return New(FromMap(cfg))
	})
}
