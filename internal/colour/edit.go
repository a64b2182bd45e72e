package colour

import (
	"errors"
	"fmt"
)

// ErrIncompatibleChannels is returned by bulk edits that name both an RGB
// channel and an HSL channel.
var ErrIncompatibleChannels = errors.New("cannot change both RGB and HSL properties")

// Channels maps channel selectors to the values of a bulk edit.
//
// Alpha combines with either family. Selectors outside the known set are
// ignored.
type Channels map[Channel]float64

// Adjust adds each value to its channel.
//
// Returns ErrIncompatibleChannels, and the receiver unchanged, if the edit
// mixes RGB and HSL channels.
func (c Colour) Adjust(values Channels) (Colour, error) {
	return c.edit("adjust", values, func(_ Channel, cur, v float64) float64 {
		return cur + v
	})
}

// Scale moves each channel by a percentage of its current value, so a
// value of -12 reduces the channel by 12% of itself. Hue is circular and is
// never scaled; it still counts towards the family check.
//
// Returns ErrIncompatibleChannels, and the receiver unchanged, if the edit
// mixes RGB and HSL channels.
func (c Colour) Scale(values Channels) (Colour, error) {
	return c.edit("scale", values, func(ch Channel, cur, v float64) float64 {
		if ch == Hue {
			return cur
		}
		return cur + cur*v/100
	})
}

// Change sets each channel to an absolute value.
//
// Returns ErrIncompatibleChannels, and the receiver unchanged, if the edit
// mixes RGB and HSL channels.
func (c Colour) Change(values Channels) (Colour, error) {
	return c.edit("change", values, func(_ Channel, _, v float64) float64 {
		return v
	})
}

// edit validates the channel families of values, applies fn to every known
// channel and resyncs away from the family that was touched.
func (c Colour) edit(op string, values Channels, fn func(ch Channel, cur, v float64) float64) (Colour, error) {
	var rgb, hsl bool
	for ch := range values {
		switch ch.family() {
		case familyRGB:
			rgb = true
		case familyHSL:
			hsl = true
		}
	}
	if rgb && hsl {
		return c, fmt.Errorf("%s: %w", op, ErrIncompatibleChannels)
	}

	for ch, v := range values {
		if p := c.field(ch); p != nil {
			*p = fn(ch, *p, v)
		}
	}

	if hsl {
		hslToRGB(&c)
	} else {
		rgbToHSL(&c)
	}
	return c, nil
}
