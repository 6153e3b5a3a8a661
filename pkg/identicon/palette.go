package identicon

// Source supplies draws in [0, 1). *core.Stream is the production source;
// tests substitute fixed sequences.
type Source interface {
	Float64() float64
}

// drawsPerColor is the number of draws RandomColor consumes.
const drawsPerColor = 6

// Palette holds the three paint colors of an identicon.
type Palette struct {
	Color     Color
	BgColor   Color
	SpotColor Color
}

// Overrides pins palette slots. A zero Color leaves the slot generated.
type Overrides struct {
	Color     Color
	BgColor   Color
	SpotColor Color

	// PreserveLayout makes an overridden slot still consume (and discard)
	// its draws, so the other slots and the bitmap match a run without
	// overrides.
	PreserveLayout bool
}

// NewPalette fills the slots in color, bgColor, spotColor order. An
// overridden slot consumes no draws unless PreserveLayout is set.
func NewPalette(src Source, ov Overrides) Palette {
	var p Palette
	p.Color = slot(src, ov.Color, ov.PreserveLayout)
	p.BgColor = slot(src, ov.BgColor, ov.PreserveLayout)
	p.SpotColor = slot(src, ov.SpotColor, ov.PreserveLayout)
	return p
}

func slot(src Source, override Color, preserve bool) Color {
	if override.IsZero() {
		return RandomColor(src)
	}
	if preserve {
		for i := 0; i < drawsPerColor; i++ {
			src.Float64()
		}
	}
	return override
}

// RandomColor draws one HSL color: a hue over the full wheel, saturation
// in [40, 100) to avoid greys, and lightness as the sum of four draws so it
// clusters around 50.
func RandomColor(src Source) Color {
	hue := int(src.Float64() * 360)
	// explicit conversion: must not compile to a fused multiply-add
	sat := float64(src.Float64()*60) + 40
	a := src.Float64()
	b := src.Float64()
	c := src.Float64()
	d := src.Float64()
	light := (a + b + c + d) * 25
	return FromHSL(HSL{H: hue, S: sat, L: light})
}
