package colour

import (
	"fmt"
	"math"
	"strconv"
)

// Hex renders the colour as "#rrggbb" in lower case. Alpha is not included.
func (c Colour) Hex() string {
	return "#" + hexByte(c.red) + hexByte(c.green) + hexByte(c.blue)
}

// HexAlpha renders "#rrggbbaa" when the colour is translucent and falls back
// to Hex for opaque colours.
func (c Colour) HexAlpha() string {
	if c.alpha >= maxAlpha {
		return c.Hex()
	}
	return c.Hex() + hexByte(c.alpha*maxRGB)
}

// RGB renders "rgb(r, g, b)" for opaque colours and "rgba(r, g, b, a)"
// otherwise. Channels are rounded to integers.
func (c Colour) RGB() string {
	r, g, b := math.Round(c.red), math.Round(c.green), math.Round(c.blue)
	if c.alpha >= maxAlpha {
		return fmt.Sprintf("rgb(%.0f, %.0f, %.0f)", r, g, b)
	}
	return fmt.Sprintf("rgba(%.0f, %.0f, %.0f, %s)", r, g, b, formatAlpha(c.alpha))
}

// HSL renders "hsl(h, s, l)" for opaque colours and "hsla(h, s, l, a)"
// otherwise. Values are rounded to integers; a hue that rounds up to 360 is
// shown as 0.
func (c Colour) HSL() string {
	h := int(math.Round(c.hue)) % 360
	s, l := int(math.Round(c.saturation)), int(math.Round(c.lightness))
	if c.alpha >= maxAlpha {
		return fmt.Sprintf("hsl(%d, %d, %d)", h, s, l)
	}
	return fmt.Sprintf("hsla(%d, %d, %d, %s)", h, s, l, formatAlpha(c.alpha))
}

// String implements fmt.Stringer using the rgb() notation.
func (c Colour) String() string {
	return c.RGB()
}

// hexByte renders a channel as two hex digits. Zero and NaN render as "00".
func hexByte(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "00"
	}
	return fmt.Sprintf("%02x", to8Bit(v))
}

// formatAlpha rounds alpha to two decimal places and drops trailing zeros,
// so 0.5 renders as "0.5" and 0.873 as "0.87".
func formatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*100)/100, 'f', -1, 64)
}
