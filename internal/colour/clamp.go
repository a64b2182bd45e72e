package colour

import "math"

// Channel limits.
const (
	maxRGB        = 255.0
	maxPercent    = 100.0
	maxAlpha      = 1.0
	degreesCircle = 360.0
)

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// wrapHue reduces a hue in degrees into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, degreesCircle)
	if h < 0 {
		h += degreesCircle
	}
	// A tiny negative remainder plus 360 can round up to exactly 360.
	if h >= degreesCircle {
		h -= degreesCircle
	}
	return h
}
