package colour

import "strings"

// Channel selects one component of a Colour.
type Channel int

// Channels of a Colour.
const (
	Red Channel = iota
	Green
	Blue
	Hue
	Saturation
	Lightness
	Alpha
)

var channelNames = [...]string{
	Red:        "red",
	Green:      "green",
	Blue:       "blue",
	Hue:        "hue",
	Saturation: "saturation",
	Lightness:  "lightness",
	Alpha:      "alpha",
}

// String returns the lower-case channel name.
func (ch Channel) String() string {
	if ch < Red || ch > Alpha {
		return "unknown"
	}
	return channelNames[ch]
}

// ParseChannel looks up a channel by name, ignoring case.
func ParseChannel(name string) (Channel, bool) {
	name = strings.ToLower(name)
	for ch, n := range channelNames {
		if n == name {
			return Channel(ch), true
		}
	}
	return 0, false
}

// family groups channels that are edited together.
type family int

const (
	familyNone family = iota
	familyRGB
	familyHSL
	familyAlpha
)

func (ch Channel) family() family {
	switch ch {
	case Red, Green, Blue:
		return familyRGB
	case Hue, Saturation, Lightness:
		return familyHSL
	case Alpha:
		return familyAlpha
	}
	return familyNone
}
