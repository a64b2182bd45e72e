package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

// SampleColour returns the colour of the pixel at (x, y).
//
// The pixel is read through the image's colour model and converted to a
// non-premultiplied 8-bit value, so a half-transparent red pixel becomes
// rgba(255, 0, 0, 0.5) rather than a darkened red. 16-bit images are scaled
// down to 8 bits.
//
// Returns an error if (x, y) lies outside the image bounds.
func SampleColour(img image.Image, x, y int) (colour.Colour, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return colour.Colour{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	return colour.FromColor(img.At(x, y)), nil
}

// SampleFile loads the image at path through cache and samples (x, y).
func SampleFile(cache *ImageCache, path string, x, y int) (colour.Colour, error) {
	img, err := cache.Load(path)
	if err != nil {
		return colour.Colour{}, err
	}
	c, err := SampleColour(img, x, y)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("failed to sample %s: %w", path, err)
	}
	return c, nil
}
