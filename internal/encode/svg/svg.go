// Package svg encodes identicons as scalable vector images.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"blockies/internal/core"
	"blockies/pkg/identicon"
)

// Config holds parameters for the SVG encoder.
type Config struct {
	// Scale sets the width and height attributes to size*Scale; the
	// viewBox always spans one unit per cell.
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

// Encoder writes a background rect plus one rect per horizontal run of
// foreground or spot cells.
type Encoder struct {
	cfg Config
}

// New returns an Encoder for cfg.
func New(cfg Config) *Encoder { return &Encoder{cfg: cfg} }

// Name returns the format identifier.
func (e *Encoder) Name() string { return "svg" }

// Extension returns the file suffix.
func (e *Encoder) Extension() string { return "svg" }

// Encode writes ic to w.
func (e *Encoder) Encode(w io.Writer, ic *identicon.Identicon) error {
	size := ic.Size()
	fills := [3]string{
		html.EscapeString(ic.BgColor().String()),
		html.EscapeString(ic.Color().String()),
		html.EscapeString(ic.SpotColor().String()),
	}

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startview(size*e.cfg.Scale, size*e.cfg.Scale, 0, 0, size, size)
	canvas.Group(`shape-rendering="crispEdges"`)
	canvas.Rect(0, 0, size, size, fill(fills[0]))
	for y := 0; y < size; y++ {
		for x := 0; x < size; {
			v := ic.At(x, y)
			run := 1
			for x+run < size && ic.At(x+run, y) == v {
				run++
			}
			if v != 0 {
				canvas.Rect(x, y, run, 1, fill(fills[v]))
			}
			x += run
		}
	}
	canvas.Gend()
	canvas.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return nil
}

// fill formats a presentation attribute; svgo passes strings holding "="
// through unchanged instead of wrapping them in style="".
func fill(value string) string {
	return `fill="` + value + `"`
}

func init() {
	core.Register("svg", func(cfg map[string]string) core.Encoder {
		return New(FromMap(cfg))
	})
}
