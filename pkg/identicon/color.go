package identicon

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// HSL is a generated color. Hue is whole degrees in [0, 360); saturation
// and lightness are percentages.
type HSL struct {
	H int
	S float64
	L float64
}

// String formats the color the way the reference implementation does, for
// example hsl(0,40.00097702257335%,10.60733626363799%).
func (h HSL) String() string {
	return "hsl(" + strconv.Itoa(h.H) + "," + formatNumber(h.S) + "%," + formatNumber(h.L) + "%)"
}

// Color is either a generated HSL value or a caller-supplied override kept
// verbatim. It implements image/color.Color so renderers can paint it
// directly. The zero Color means "no color".
type Color struct {
	text      string
	hsl       HSL
	generated bool
	rgba      color.NRGBA
}

// FromHSL builds a generated color. Its sRGB value is resolved from the
// same hsl() text renderers receive.
func FromHSL(h HSL) Color {
	text := h.String()
	rgba, _ := resolve(text)
	return Color{
		text:      text,
		hsl:       h,
		generated: true,
		rgba:      rgba,
	}
}

// ParseColor validates an override as a CSS color: hex forms, rgb()/rgba(),
// hsl()/hsla(), named colors and "transparent". The returned Color keeps s
// unchanged as its text.
func ParseColor(s string) (Color, error) {
	rgba, ok := resolve(s)
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{text: s, rgba: rgba}, nil
}

// String returns the color text handed to renderers.
func (c Color) String() string { return c.text }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c.text == "" }

// HSL returns the components of a generated color. ok is false for
// overrides.
func (c Color) HSL() (h HSL, ok bool) { return c.hsl, c.generated }

// NRGBA returns the resolved non-premultiplied sRGB value.
func (c Color) NRGBA() color.NRGBA { return c.rgba }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.rgba.RGBA() }

// formatNumber prints v as the shortest decimal that round-trips,
// switching to exponent form below 1e-6 like ECMAScript number output.
func formatNumber(v float64) string {
	if v != 0 && math.Abs(v) < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		n, _ := strconv.Atoi(exp)
		return mant + "e" + strconv.Itoa(n)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// resolve parses CSS color text into an sRGB value.
func resolve(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, false
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
