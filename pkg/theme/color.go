package theme

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with alpha. The zero value is fully transparent and
// means "do not paint".
type Color struct {
	colorful.Color
	A float64
}

// None is the transparent color.
var None = Color{}

// Hex builds an opaque color from "#rrggbb" and panics on malformed input.
// It is meant for built-in palettes.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA builds a color from 8-bit channels and an alpha in [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, A: a}
}

// ParseColor parses "none", "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return None, nil
	}
	alpha := 1.0
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return None, fmt.Errorf("invalid alpha in color %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return None, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{Color: c, A: alpha}, nil
}

// IsNone reports whether the color paints nothing.
func (c Color) IsNone() bool { return c.A <= 0 }

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = max(0, min(1, a))
	return c
}

// Blend mixes c towards other by t in CIE L*a*b* space, keeping c's alpha.
func (c Color) Blend(other Color, t float64) Color {
	return Color{Color: c.Color.BlendLab(other.Color, t).Clamped(), A: c.A}
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(max(0, min(1, c.A)) * 255))}
}

// String renders the color as "#rrggbb", "#rrggbbaa" or "none".
func (c Color) String() string {
	if c.IsNone() {
		return "none"
	}
	hex := c.Clamped().Hex()
	if c.A < 1 {
		return fmt.Sprintf("%s%02x", hex, uint8(math.Round(c.A*255)))
	}
	return hex
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// hueWheel returns n pastel colors evenly spaced around the hue circle,
// starting at offset degrees.
func hueWheel(n int, offset, sat, val float64) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = Color{Color: colorful.Hsv(math.Mod(offset+float64(i)*360/float64(n), 360), sat, val), A: 1}
	}
	return out
}
