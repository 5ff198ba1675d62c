// Package graphics provides the color value type animated by the motion
// engines.
package graphics

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Mix blends toward another color at position t, blending the RGB
// channels in RGB space and the alpha channel linearly. t outside [0, 1]
// is clamped; colors have no meaningful extrapolation.
//
// Mix makes Color satisfy the interpolate.Mixable capability, so color
// keyframe sequences work with the range interpolator out of the box.
func (c Color) Mix(to Color, t float64) Color {
	t = clamp01(t)
	blended := c.colorful().BlendRgb(to.colorful(), t).Clamped()
	a := c.Alpha() + (to.Alpha()-c.Alpha())*t
	return RGBA(
		uint8(math.Round(blended.R*maxByte)),
		uint8(math.Round(blended.G*maxByte)),
		uint8(math.Round(blended.B*maxByte)),
		a,
	)
}

// Hex returns the color as "#rrggbb", or "#aarrggbb" when not fully opaque.
func (c Color) Hex() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// Parse reads a color from a hex string ("#rgb", "#rrggbb", "#aarrggbb")
// or a color name such as "steelblue". Names are the SVG 1.1 set plus
// "rebeccapurple" from CSS Color 4.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if named, ok := colornames.Map[s]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	if s == "rebeccapurple" {
		// CSS Color 4 addition; the SVG 1.1 table predates it.
		return RGB(0x66, 0x33, 0x99), nil
	}

	if strings.HasPrefix(s, "#") && len(s) == 9 {
		var a, r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &a, &r, &g, &b); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGBA8(r, g, b, a), nil
	}

	parsed, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB(
		uint8(math.Round(parsed.R*maxByte)),
		uint8(math.Round(parsed.G*maxByte)),
		uint8(math.Round(parsed.B*maxByte)),
	), nil
}

// MustParse is Parse for compile-time constant strings; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
