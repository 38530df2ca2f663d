package graphics

import "fmt"

// Color is a 32-bit ARGB color value.
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

// ARGB constructs a color from 8-bit channel values.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs a fully opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// Alpha returns the alpha channel of the color.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(c)&0x00FFFFFF | uint32(a)<<24)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses a #RRGGBB or #AARRGGBB string.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("parse color %q: missing leading '#'", s)
	}
	var v uint32
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s[1:], "%06x", &v); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color(v | 0xFF000000), nil
	case 9:
		if _, err := fmt.Sscanf(s[1:], "%08x", &v); err != nil {
			return 0, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("parse color %q: want #RRGGBB or #AARRGGBB", s)
	}
}
