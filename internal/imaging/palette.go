package imaging

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

// paletteStep is the quantization bucket width per 8-bit channel.
const paletteStep = 16

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the top-left corner (inclusive) and (X2, Y2) the bottom-right
// corner (exclusive).
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// PaletteEntry is one quantized colour and its share of the sampled pixels.
type PaletteEntry struct {
	Colour     colour.Colour
	Percentage float64 // 0-100
}

// Palette returns up to count of the most common colours in img, or in
// region when it is non-nil, most common first.
//
// Each channel is quantized down to a multiple of 16 before counting, so
// #f0f0f0 and #fafafa land in the same bucket. Alpha is ignored; pixels are
// read through their non-premultiplied colour. Entries with equal share are
// ordered by hex value.
func Palette(img image.Image, count int, region *Region) ([]PaletteEntry, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid palette size %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}
	if bounds.Empty() {
		return nil, errors.New("region contains no pixels")
	}

	counts := make(map[[3]uint8]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p := colour.FromColor(img.At(x, y)).NRGBA()
			key := [3]uint8{p.R / paletteStep * paletteStep, p.G / paletteStep * paletteStep, p.B / paletteStep * paletteStep}
			counts[key]++
		}
	}

	total := float64(bounds.Dx() * bounds.Dy())
	entries := make([]PaletteEntry, 0, len(counts))
	for key, n := range counts {
		entries = append(entries, PaletteEntry{
			Colour:     colour.FromRGB(float64(key[0]), float64(key[1]), float64(key[2]), colour.DefaultAlpha),
			Percentage: float64(n) * 100 / total,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Colour.Hex() < entries[j].Colour.Hex()
	})

	if len(entries) > count {
		entries = entries[:count]
	}
	return entries, nil
}

// PaletteFile loads the image at path through cache and extracts its palette.
func PaletteFile(cache *ImageCache, path string, count int, region *Region) ([]PaletteEntry, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	entries, err := Palette(img, count, region)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette from %s: %w", path, err)
	}
	return entries, nil
}
