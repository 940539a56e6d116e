package pulse

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// DefaultClearColor is the color a View clears the surface to.
var DefaultClearColor = ColorLinearRGBA(0.1, 0.2, 0.3, 1)

// Color holds straight alpha rgba values in linear color space.
type Color struct {
	R, G, B, A float32
}

func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorSRGBA converts gamma encoded srgb values, as picked from an image
// or a color chooser, into linear space. Alpha is not encoded.
func ColorSRGBA(r, g, b, a float32) Color {
	return ColorLinearRGBA(degamma(r), degamma(g), degamma(b), a)
}

// ParseColor parses an srgb color, either as hex string "#rrggbb" or
// "#rrggbbaa", or as comma separated components "r, g, b" or
// "r, g, b, a" in the range 0 to 1.
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)

	if hexValue, ok := strings.CutPrefix(value, "#"); ok {
		return parseHexColor(hexValue)
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("color %q: expected 3 or 4 components", value)
	}

	components := [4]float32{0, 0, 0, 1}
	for idx, part := range parts {
		component, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", value, err)
		}

		if component < 0 || component > 1 {
			return Color{}, fmt.Errorf("color %q: component %g out of range", value, component)
		}

		components[idx] = float32(component)
	}

	return ColorSRGBA(components[0], components[1], components[2], components[3]), nil
}

func parseHexColor(value string) (Color, error) {
	if len(value) != 6 && len(value) != 8 {
		return Color{}, fmt.Errorf("color #%s: expected 6 or 8 hex digits", value)
	}

	buf, err := hex.DecodeString(value)
	if err != nil {
		return Color{}, fmt.Errorf("color #%s: %w", value, err)
	}

	alpha := byte(255)
	if len(buf) == 4 {
		alpha = buf[3]
	}

	return ColorSRGBA(
		float32(buf[0])/255,
		float32(buf[1])/255,
		float32(buf[2])/255,
		float32(alpha)/255,
	), nil
}

// ToWGPU converts the color into a wgpu.Color, e.g. to be used as clear value.
func (c Color) ToWGPU() wgpu.Color {
	return wgpu.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
