// Package json writes the identicon descriptor itself rather than an image.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"blockies/internal/core"
	"blockies/pkg/identicon"
)

// Descriptor is the wire shape of an identicon.
type Descriptor struct {
	Color     string `json:"color"`
	BgColor   string `json:"bgColor"`
	SpotColor string `json:"spotColor"`
	Size      int    `json:"size"`
	Bitmap    []int  `json:"bitmap"`
}

// Config holds parameters for the JSON encoder.
type Config struct {
	Indent bool
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	return Config{Indent: cfg["indent"] == "true"}
}

// Encoder writes Descriptor values.
type Encoder struct {
	cfg Config
}

// New returns an Encoder for cfg.
func New(cfg Config) *Encoder { return &Encoder{cfg: cfg} }

// Name returns the format identifier.
func (e *Encoder) Name() string { return "json" }

// Extension returns the file suffix.
func (e *Encoder) Extension() string { return "json" }

// Encode writes ic to w.
func (e *Encoder) Encode(w io.Writer, ic *identicon.Identicon) error {
	enc := json.NewEncoder(w)
	if e.cfg.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(Describe(ic)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Describe converts ic to its wire shape. Cells widen to int so the bitmap
// encodes as a number array rather than base64.
func Describe(ic *identicon.Identicon) Descriptor {
	cells := ic.Bitmap()
	bitmap := make([]int, len(cells))
	for i, c := range cells {
		bitmap[i] = int(c)
	}
	return Descriptor{
		Color:     ic.Color().String(),
		BgColor:   ic.BgColor().String(),
		SpotColor: ic.SpotColor().String(),
		Size:      ic.Size(),
		Bitmap:    bitmap,
	}
}

func init() {
	core.Register("json", func(cfg map[string]string) core.Encoder {
		return New(FromMap(cfg))
	})
}
