// Package shade derives the rotating background palette of the landing page
// and picks a legible foreground color for any shade of it.
//
// Colors are carried in their canonical "#rrggbb" form so they can be handed
// straight to lipgloss without conversion.
package shade

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB value written as '#' followed by six hex digits.
type Color string

// The two foregrounds the contrast selector chooses between.
const (
	Black Color = "#000000"
	White Color = "#FFFFFF"
)

// ErrInvalidColorFormat is returned when a string is not a "#rrggbb" color.
var ErrInvalidColorFormat = errors.New("shade: invalid color format")

// ParseColor validates s as a six-digit hex color.
// Upper and lower case digits are both accepted; the input is returned as-is.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return Color(s), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Intended for package-level constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGB splits the color into its byte channels by reading consecutive
// two-digit hex pairs. Malformed colors yield zero channels.
func (c Color) RGB() (r, g, b uint8) {
	if len(c) != 7 {
		return 0, 0, 0
	}
	return channel(string(c[1:3])), channel(string(c[3:5])), channel(string(c[5:7]))
}

// Uint32 returns the color packed as 0xRRGGBB.
func (c Color) Uint32() uint32 {
	r, g, b := c.RGB()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return string(c)
}

func channel(pair string) uint8 {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// fromUint32 encodes a packed 0xRRGGBB value as a lowercase, zero-padded color.
func fromUint32(v uint32) Color {
	return Color(fmt.Sprintf("#%06x", v&0xFFFFFF))
}

// Blend mixes a toward b in RGB space. t is clamped to [0, 1]; t=0 returns a.
func Blend(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		return b
	}
	return Color(ca.BlendRgb(cb, t).Clamped().Hex())
}
