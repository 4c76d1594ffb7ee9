package slate

import "image/color"

// Color is a 32-bit color packed as 0xRRGGBBAA. The alpha byte is always
// 0xFF for visible colors; the zero value is the Transparent sentinel,
// meaning "no fill" rather than opaque black.
type Color uint32

// Transparent is the "no fill" sentinel. A primitive with a Transparent
// background reveals whatever is below it wherever its own payload has
// no opaque pixel.
const Transparent Color = 0

// RGB packs an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<24 | Color(g)<<16 | Color(b)<<8 | 0xFF
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c >> 8) }

// Opaque reports whether the color is a visible fill, as opposed to the
// Transparent sentinel.
func (c Color) Opaque() bool { return c != Transparent }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == Transparent {
		return 0, 0, 0, 0
	}
	r = uint32(c.R()) * 0x101
	g = uint32(c.G()) * 0x101
	b = uint32(c.B()) * 0x101
	return r, g, b, 0xFFFF
}

var _ color.Color = Transparent

// Hex parses "#RGB", "#RRGGBB" or the bare forms without "#".
// The second return value reports whether the string was well formed.
func Hex(s string) (Color, bool) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	switch len(s) {
	case 3:
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return Transparent, false
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return Transparent, false
		}
	default:
		return Transparent, false
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
