package colour

// Lighten raises lightness by an absolute amount (0-100 scale).
func (c Colour) Lighten(amount float64) Colour {
	c.lightness += amount
	hslToRGB(&c)
	return c
}

// LightenPercent raises lightness by pct percent of its current value.
func (c Colour) LightenPercent(pct float64) Colour {
	c.lightness += c.lightness * pct / 100
	hslToRGB(&c)
	return c
}

// Darken lowers lightness by an absolute amount (0-100 scale).
func (c Colour) Darken(amount float64) Colour {
	c.lightness -= amount
	hslToRGB(&c)
	return c
}

// DarkenPercent lowers lightness by pct percent of its current value.
func (c Colour) DarkenPercent(pct float64) Colour {
	c.lightness -= c.lightness * pct / 100
	hslToRGB(&c)
	return c
}

// Saturate raises saturation by an absolute amount (0-100 scale).
func (c Colour) Saturate(amount float64) Colour {
	c.saturation += amount
	hslToRGB(&c)
	return c
}

// SaturatePercent raises saturation by pct percent of its current value.
func (c Colour) SaturatePercent(pct float64) Colour {
	c.saturation += c.saturation * pct / 100
	hslToRGB(&c)
	return c
}

// Desaturate lowers saturation by an absolute amount (0-100 scale).
func (c Colour) Desaturate(amount float64) Colour {
	c.saturation -= amount
	hslToRGB(&c)
	return c
}

// DesaturatePercent lowers saturation by pct percent of its current value.
func (c Colour) DesaturatePercent(pct float64) Colour {
	c.saturation -= c.saturation * pct / 100
	hslToRGB(&c)
	return c
}

// Grayscale drops saturation to zero, keeping hue and lightness.
func (c Colour) Grayscale() Colour {
	c.saturation = 0
	hslToRGB(&c)
	return c
}

// AdjustHue rotates the hue by the given number of degrees. Any magnitude
// or sign is accepted; the result wraps into [0, 360).
func (c Colour) AdjustHue(degrees float64) Colour {
	c.hue += degrees
	hslToRGB(&c)
	return c
}

// Complement rotates the hue by 180 degrees.
func (c Colour) Complement() Colour {
	return c.AdjustHue(180)
}

// Invert replaces every RGB channel with 255 minus its value.
func (c Colour) Invert() Colour {
	c.red = maxRGB - c.red
	c.green = maxRGB - c.green
	c.blue = maxRGB - c.blue
	rgbToHSL(&c)
	return c
}

// Opacify raises alpha by amount, clamped to [0, 1].
func (c Colour) Opacify(amount float64) Colour {
	c.alpha = clamp(c.alpha+amount, 0, maxAlpha)
	return c
}

// Transparentize lowers alpha by amount, clamped to [0, 1].
func (c Colour) Transparentize(amount float64) Colour {
	c.alpha = clamp(c.alpha-amount, 0, maxAlpha)
	return c
}
