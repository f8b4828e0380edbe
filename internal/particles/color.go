package particles

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

var (
	DefaultPrimary = RGB{R: 0x23, G: 0xae, B: 0xb3}
	DefaultAccent  = RGB{R: 0x02, G: 0x38, B: 0x5c}
)

// ParseColor reads a CSS hex colour such as "#23aeb3" or " 23aeb3".
// Values that do not parse yield fallback.
func ParseColor(s string, fallback RGB) RGB {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return fallback
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is an RGB colour with an alpha channel in [0, 1].
type Color struct {
	RGB
	A float64
}

// Alpha returns c at the given opacity.
func (c RGB) Alpha(a float64) Color {
	return Color{RGB: c, A: a}
}

// Transparent is fully transparent black.
var Transparent = Color{}

// CSS formats the colour for a canvas fillStyle / strokeStyle.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(c.A))
}

// Over composites c on top of an opaque background and returns the
// resulting opaque colour.
func (c Color) Over(bg RGB) RGB {
	a := clamp(c.A, 0, 1)
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	back := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := back.BlendRgb(fg, a).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func formatAlpha(a float64) string {
	s := fmt.Sprintf("%.3f", clamp(a, 0, 1))
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
