package colour

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// nameByRGB is the reverse of colornames.Map. Where several keywords share
// an RGB value (aqua/cyan, gray/grey) the alphabetically first one wins.
var nameByRGB = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		key := [3]uint8{c.R, c.G, c.B}
		if _, ok := m[key]; !ok {
			m[key] = name
		}
	}
	return m
}()

// lookupName resolves a lower-case CSS/SVG colour keyword.
func lookupName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

// Name returns the colour keyword whose RGB value equals c after rounding
// each channel. Alpha is ignored. The second result is false when no
// keyword matches.
func (c Colour) Name() (string, bool) {
	key := [3]uint8{to8Bit(c.red), to8Bit(c.green), to8Bit(c.blue)}
	name, ok := nameByRGB[key]
	return name, ok
}
