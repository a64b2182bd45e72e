package colour

import (
	"image/color"
	"math"
)

// Colour is a colour held in both RGB and HSL form, plus alpha.
//
// The zero value is transparent black. Use New
// for the default opaque white, or Parse, FromRGB and FromHSL for anything
// else. A Colour is a plain value: copying it is cheap and every method
// returns a fresh Colour.
type Colour struct {
	red, green, blue           float64
	hue, saturation, lightness float64
	alpha                      float64
}

// DefaultAlpha is the alpha of colours whose notation does not carry one.
const DefaultAlpha = 1.0

// New returns opaque white, the colour used when no notation is given.
func New() Colour {
	return FromRGB(255, 255, 255, DefaultAlpha)
}

// FromRGB builds a Colour from red, green and blue (0-255) and alpha (0-1).
// Values outside those ranges are clamped.
func FromRGB(r, g, b, a float64) Colour {
	c := Colour{red: r, green: g, blue: b, alpha: a}
	rgbToHSL(&c)
	return c
}

// FromHSL builds a Colour from hue (degrees), saturation and lightness
// (0-100) and alpha (0-1). Hue wraps; the other channels are clamped.
func FromHSL(h, s, l, a float64) Colour {
	c := Colour{hue: h, saturation: s, lightness: l, alpha: a}
	hslToRGB(&c)
	return c
}

// FromColor converts any image/color value into a Colour.
func FromColor(cc color.Color) Colour {
	n := color.NRGBAModel.Convert(cc).(color.NRGBA)
	return FromRGB(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

// Red returns the red channel (0-255).
func (c Colour) Red() float64 { return c.red }

// Green returns the green channel (0-255).
func (c Colour) Green() float64 { return c.green }

// Blue returns the blue channel (0-255).
func (c Colour) Blue() float64 { return c.blue }

// Hue returns the hue in degrees, in [0, 360).
func (c Colour) Hue() float64 { return c.hue }

// Saturation returns the saturation percentage (0-100).
func (c Colour) Saturation() float64 { return c.saturation }

// Lightness returns the lightness percentage (0-100).
func (c Colour) Lightness() float64 { return c.lightness }

// Alpha returns the opacity (0-1).
func (c Colour) Alpha() float64 { return c.alpha }

// Channel returns the value of a single channel, or 0 for an unknown one.
func (c Colour) Channel(ch Channel) float64 {
	if p := c.field(ch); p != nil {
		return *p
	}
	return 0
}

// RGBA implements color.Color. Channels are rounded to 8 bits before being
// alpha-premultiplied.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the colour as a non-premultiplied 8-bit color.NRGBA.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8Bit(c.red),
		G: to8Bit(c.green),
		B: to8Bit(c.blue),
		A: to8Bit(c.alpha * maxRGB),
	}
}

// field maps a channel selector to the storage behind it.
func (c *Colour) field(ch Channel) *float64 {
	switch ch {
	case Red:
		return &c.red
	case Green:
		return &c.green
	case Blue:
		return &c.blue
	case Hue:
		return &c.hue
	case Saturation:
		return &c.saturation
	case Lightness:
		return &c.lightness
	case Alpha:
		return &c.alpha
	}
	return nil
}

// to8Bit rounds v and clamps it into a byte. NaN maps to 0.
func to8Bit(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clamp(math.Round(v), 0, maxRGB))
}
