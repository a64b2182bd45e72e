package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

// DefaultSwatchSize is the edge length in pixels of one swatch cell.
const DefaultSwatchSize = 64

// checkerTiles is the number of checkerboard tiles along one cell edge.
const checkerTiles = 8

var (
	checkerLight = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	checkerDark  = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
)

// SwatchResult contains a rendered colour swatch.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Colours     []string `json:"colours"` // HexAlpha of each cell, left to right
}

// Swatch renders colours side by side as size x size cells.
//
// Each cell is the colour composited over a checkerboard, so translucent
// colours show the board through them and opaque ones cover it completely.
func Swatch(colours []colour.Colour, size int) (*SwatchResult, error) {
	if len(colours) == 0 {
		return nil, errors.New("no colours to render")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid swatch size %d", size)
	}

	board := checkerboard(size)
	canvas := imaging.New(size*len(colours), size, color.Transparent)
	hexes := make([]string, len(colours))

	for i, c := range colours {
		fill := imaging.New(size, size, c.NRGBA())
		cell := blend.Normal(board, fill)
		canvas = imaging.Paste(canvas, cell, image.Pt(i*size, 0))
		hexes[i] = c.HexAlpha()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       canvas.Bounds().Dx(),
		Height:      canvas.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Colours:     hexes,
	}, nil
}

// checkerboard builds the opaque background of one swatch cell.
func checkerboard(size int) *image.NRGBA {
	tile := size / checkerTiles
	if tile < 1 {
		tile = 1
	}

	board := imaging.New(size, size, checkerLight)
	dark := imaging.New(tile, tile, checkerDark)
	for y := 0; y < size; y += tile {
		for x := 0; x < size; x += tile {
			if (x/tile+y/tile)%2 == 1 {
				board = imaging.Paste(board, dark, image.Pt(x, y))
			}
		}
	}
	return board
}
