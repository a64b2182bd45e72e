package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColour is returned by Parse for text that matches no notation.
var ErrInvalidColour = errors.New("invalid colour string")

// notation identifies which grammar a colour string matched.
type notation int

const (
	notationHex notation = iota + 1
	notationRGB
	notationHSL
	notationNamed
)

var (
	hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d+)[,\s]*(\d+)[,\s]*(\d+)[,\s]*([.\d]+)?\s*\)$`)
	hslPattern = regexp.MustCompile(`(?i)^hsla?\(\s*(\d+)[,\s]*(\d+)[,\s]*(\d+)[,\s]*([.\d]+)?\s*\)$`)
)

// parsed is the result of matching a colour string against the grammars:
// three native channels (RGB or HSL depending on kind) and alpha.
type parsed struct {
	kind     notation
	channels [3]float64
	alpha    float64
}

// Parse builds a Colour from one of the supported notations:
//
//	#5baa30  5baa30  #ff000080      6 or 8 hex digits, last pair is alpha
//	rgb(255, 0, 0)  rgba(255 0 0 0.5)
//	hsl(0, 100, 50) hsla(0,100,50,0.5)
//	cornflowerblue                  a CSS/SVG colour keyword
//
// Hex digits, function names and keywords are case-insensitive. Separators
// inside rgb()/hsl() may be commas, whitespace or both. Alpha defaults to 1.
//
// Returns ErrInvalidColour (wrapped with the offending text) when s matches
// none of these.
func Parse(s string) (Colour, error) {
	p, err := parseNotation(s)
	if err != nil {
		return Colour{}, err
	}

	if p.kind == notationHSL {
		return FromHSL(p.channels[0], p.channels[1], p.channels[2], p.alpha), nil
	}
	return FromRGB(p.channels[0], p.channels[1], p.channels[2], p.alpha), nil
}

// MustParse is like Parse but panics on invalid input. It is meant for
// colour literals known at compile time.
func MustParse(s string) Colour {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseNotation(s string) (parsed, error) {
	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}
	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return parseFunctional(notationRGB, s, m[1:])
	}
	if m := hslPattern.FindStringSubmatch(s); m != nil {
		return parseFunctional(notationHSL, s, m[1:])
	}
	if rgb, ok := lookupName(strings.ToLower(s)); ok {
		return parsed{
			kind:     notationNamed,
			channels: [3]float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)},
			alpha:    DefaultAlpha,
		}, nil
	}
	return parsed{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

// parseHex decodes 6 or 8 hex digits already validated by hexPattern.
func parseHex(digits string) (parsed, error) {
	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return parsed{}, fmt.Errorf("%w: %v", ErrInvalidColour, err)
	}

	p := parsed{kind: notationHex, alpha: DefaultAlpha}
	if len(digits) == 8 {
		p.alpha = float64(uint8(val)) / 255
		val >>= 8
	}
	p.channels = [3]float64{float64(uint8(val >> 16)), float64(uint8(val >> 8)), float64(uint8(val))}
	return p, nil
}

// parseFunctional converts the submatches of an rgb()/hsl() pattern. groups
// holds the three integer channels and the optional alpha.
func parseFunctional(kind notation, s string, groups []string) (parsed, error) {
	p := parsed{kind: kind, alpha: DefaultAlpha}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(groups[i], 64)
		if err != nil {
			return parsed{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
		}
		p.channels[i] = v
	}
	if groups[3] != "" {
		a, err := strconv.ParseFloat(groups[3], 64)
		if err != nil {
			return parsed{}, fmt.Errorf("%w: bad alpha in %q", ErrInvalidColour, s)
		}
		p.alpha = a
	}
	return p, nil
}
