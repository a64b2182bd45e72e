package colour

// DefaultMixWeight is the weight MixWith uses: an even blend.
const DefaultMixWeight = 50.0

// MixWith blends c with other at DefaultMixWeight.
func (c Colour) MixWith(other Colour) Colour {
	return c.MixWithWeight(other, DefaultMixWeight)
}

// MixWithWeight blends c with other. weight is the percentage (0-100) that
// other contributes; values outside that range are clamped.
//
// # Alpha Weighting
//
// The RGB channels are weighted by both the requested weight and the alpha
// difference between the colours, so the more opaque colour pulls the result
// towards itself even at an even weight. Alpha itself is interpolated
// linearly by weight:
//
//	p  = weight / 100
//	w  = 2p - 1
//	a  = other.alpha - c.alpha
//	w1 = ((w*a == -1 ? w : (w+a)/(1+w*a)) + 1) / 2
//	w2 = 1 - w1
//
// The w*a == -1 branch avoids 0/0 when the weight and alpha difference are
// exact opposites.
//
// Neither input is modified.
func (c Colour) MixWithWeight(other Colour, weight float64) Colour {
	p := clamp(weight, 0, 100) / 100
	w := 2*p - 1
	a := other.alpha - c.alpha

	var w1 float64
	if w*a == -1 {
		w1 = (w + 1) / 2
	} else {
		w1 = ((w+a)/(1+w*a) + 1) / 2
	}
	w2 := 1 - w1

	return FromRGB(
		other.red*w1+c.red*w2,
		other.green*w1+c.green*w2,
		other.blue*w1+c.blue*w2,
		other.alpha*p+c.alpha*(1-p),
	)
}

// MixWithString parses other and blends it with c at the given weight.
func (c Colour) MixWithString(other string, weight float64) (Colour, error) {
	o, err := Parse(other)
	if err != nil {
		return Colour{}, err
	}
	return c.MixWithWeight(o, weight), nil
}
