// Package identicon derives blocky avatars from string seeds. The same seed,
// size and overrides always produce the same Identicon, on any platform.
package identicon

import (
	"fmt"
	"slices"

	"blockies/pkg/core"
)

// Identicon is an immutable generated avatar: a palette plus a mirrored
// size*size grid of cell values (0 background, 1 color, 2 spot color).
type Identicon struct {
	palette Palette
	grid    *core.Grid
}

// Option adjusts a Generate call.
type Option func(*Overrides) error

// WithColor pins the foreground color. An empty string leaves it generated.
func WithColor(s string) Option {
	return overrideWith(s, "color", func(o *Overrides, c Color) { o.Color = c })
}

// WithBgColor pins the background color. An empty string leaves it generated.
func WithBgColor(s string) Option {
	return overrideWith(s, "bgColor", func(o *Overrides, c Color) { o.BgColor = c })
}

// WithSpotColor pins the spot color. An empty string leaves it generated.
func WithSpotColor(s string) Option {
	return overrideWith(s, "spotColor", func(o *Overrides, c Color) { o.SpotColor = c })
}

// PreserveLayout keeps the draw positions of overridden slots; see
// Overrides.PreserveLayout.
func PreserveLayout() Option {
	return func(o *Overrides) error {
		o.PreserveLayout = true
		return nil
	}
}

func overrideWith(s, slot string, set func(*Overrides, Color)) Option {
	return func(o *Overrides) error {
		if s == "" {
			return nil
		}
		c, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("%s override: %w", slot, err)
		}
		set(o, c)
		return nil
	}
}

// Generate builds the identicon for seed. Inputs are validated before any
// draw is taken; on error no Identicon is returned.
func Generate(seed string, size int, opts ...Option) (*Identicon, error) {
	if err := checkSize(size); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	var ov Overrides
	for _, opt := range opts {
		if err := opt(&ov); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
	}
	return Assemble(core.NewStream(seed), size, ov)
}

// Assemble runs the palette and bitmap stages against src, in that order.
// Overrides are used as given.
func Assemble(src Source, size int, ov Overrides) (*Identicon, error) {
	palette := NewPalette(src, ov)
	grid, err := NewBitmap(size, src)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	return &Identicon{palette: palette, grid: grid}, nil
}

// Color returns the foreground color.
func (ic *Identicon) Color() Color { return ic.palette.Color }

// BgColor returns the background color.
func (ic *Identicon) BgColor() Color { return ic.palette.BgColor }

// SpotColor returns the spot color.
func (ic *Identicon) SpotColor() Color { return ic.palette.SpotColor }

// Palette returns all three colors.
func (ic *Identicon) Palette() Palette { return ic.palette }

// Size returns the grid side length.
func (ic *Identicon) Size() int { return ic.grid.Size() }

// Bitmap returns a copy of the cells in row-major order.
func (ic *Identicon) Bitmap() []uint8 { return slices.Clone(ic.grid.Cells()) }

// Grid returns a copy of the cell grid.
func (ic *Identicon) Grid() *core.Grid { return ic.grid.Clone() }

// At returns the cell at column x, row y.
func (ic *Identicon) At(x, y int) uint8 { return ic.grid.At(x, y) }

// Equal reports whether both identicons have the same palette text and
// cells.
func (ic *Identicon) Equal(other *Identicon) bool {
	if ic == nil || other == nil {
		return ic == other
	}
	return ic.palette.Color.String() == other.palette.Color.String() &&
		ic.palette.BgColor.String() == other.palette.BgColor.String() &&
		ic.palette.SpotColor.String() == other.palette.SpotColor.String() &&
		slices.Equal(ic.grid.Cells(), other.grid.Cells())
}
