// Package colour implements a colour value that is held in two synchronized
// coordinate systems, RGB and HSL, plus an alpha channel.
//
// A Colour is created from text (hex, rgb()/rgba(), hsl()/hsla() or a colour
// keyword), transformed through methods such as Lighten, AdjustHue or MixWith,
// and rendered back to hex, rgb() or hsl() notation.
//
// # Channel Ranges
//
//   - Red, Green, Blue: 0-255
//   - Hue: degrees in [0, 360), wrapped rather than clamped
//   - Saturation, Lightness: 0-100 (percent)
//   - Alpha: 0-1
//
// Out-of-range inputs are never errors. RGB, saturation, lightness and alpha
// are clamped; hue wraps around the colour wheel.
//
// # Value Semantics
//
// Colour is an immutable value type. Every transformation returns a new
// Colour and leaves the receiver untouched, so chains read naturally:
//
//	c, err := colour.Parse("#5baa30")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Lighten(10).AdjustHue(30).HSL())
//
// Each operation edits exactly one coordinate system and re-derives the other
// before returning, so the RGB and HSL views of a Colour always describe the
// same colour.
//
// # Thread Safety
//
// Colour holds no shared state. Values can be copied and used from any number
// of goroutines.
//
// # Error Handling
//
// Only two operations can fail:
//   - Parse returns ErrInvalidColour for text that matches no notation
//   - Adjust, Scale and Change return ErrIncompatibleChannels when the edit
//     names both RGB and HSL channels; the receiver is returned unchanged
package colour
