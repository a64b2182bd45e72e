package colour

import "math"

// rgbToHSL derives hue, saturation and lightness from the red, green and blue
// channels of c. RGB and alpha are clamped first and otherwise left alone.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Achromatic colours (max == min) get hue 0 and saturation 0.
func rgbToHSL(c *Colour) {
	c.red = clamp(c.red, 0, maxRGB)
	c.green = clamp(c.green, 0, maxRGB)
	c.blue = clamp(c.blue, 0, maxRGB)
	c.alpha = clamp(c.alpha, 0, maxAlpha)

	r := c.red / maxRGB
	g := c.green / maxRGB
	b := c.blue / maxRGB

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		c.hue, c.saturation, c.lightness = 0, 0, l*maxPercent
		return
	}

	d := max - min

	var s float64
	if l < 0.5 {
		s = d / (2 * l)
	} else {
		s = d / (2 - 2*l)
	}

	var h float64
	switch max {
	case r:
		h = 60 * ((g - b) / d)
	case g:
		h = 60*((b-r)/d) + 120
	default:
		h = 60*((r-g)/d) + 240
	}

	c.hue = wrapHue(h)
	c.saturation = s * maxPercent
	c.lightness = l * maxPercent
}

// hslToRGB derives red, green and blue from the hue, saturation and lightness
// channels of c. Hue is wrapped into [0, 360); saturation, lightness and alpha
// are clamped before conversion.
func hslToRGB(c *Colour) {
	c.hue = wrapHue(c.hue)
	c.saturation = clamp(c.saturation, 0, maxPercent)
	c.lightness = clamp(c.lightness, 0, maxPercent)
	c.alpha = clamp(c.alpha, 0, maxAlpha)

	h := c.hue / degreesCircle
	s := c.saturation / maxPercent
	l := c.lightness / maxPercent

	var m2 float64
	if l < 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	c.red = hueToChannel(m1, m2, h+1.0/3.0) * maxRGB
	c.green = hueToChannel(m1, m2, h) * maxRGB
	c.blue = hueToChannel(m1, m2, h-1.0/3.0) * maxRGB
}

// hueToChannel interpolates one RGB channel between the anchors m1 and m2
// for a hue h expressed as a fraction of the colour wheel.
func hueToChannel(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}
	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2.0/3.0-h)*6
	default:
		return m1
	}
}
