package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

// decodeSwatch turns a SwatchResult back into an image.
func decodeSwatch(t *testing.T, r *SwatchResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img
}

// near reports whether two 8-bit channels differ by at most tol.
func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestSwatch(t *testing.T) {
	colours := []colour.Colour{
		colour.MustParse("#ff0000"),
		colour.MustParse("rgba(0, 0, 255, 0)"),
		colour.MustParse("hsl(120, 100, 25)"),
	}

	result, err := Swatch(colours, 16)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}

	if result.Width != 48 || result.Height != 16 {
		t.Errorf("dimensions: got %dx%d, want 48x16", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	wantHex := []string{"#ff0000", "#0000ff00", "#008000"}
	for i, h := range wantHex {
		if result.Colours[i] != h {
			t.Errorf("Colours[%d]: got %s, want %s", i, result.Colours[i], h)
		}
	}

	img := decodeSwatch(t, result)
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 16 {
		t.Fatalf("decoded dimensions: got %dx%d, want 48x16", b.Dx(), b.Dy())
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"opaque red covers board", 8, 8, color.NRGBA{R: 255, A: 255}},
		{"transparent shows light tile", 16, 0, checkerLight},
		{"transparent shows dark tile", 18, 0, checkerDark},
		{"opaque green", 40, 8, color.NRGBA{G: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA)
			if !near(got.R, tt.want.R, 2) || !near(got.G, tt.want.G, 2) || !near(got.B, tt.want.B, 2) {
				t.Errorf("pixel (%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSwatch_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		colours []colour.Colour
		size    int
	}{
		{"no colours", nil, 16},
		{"zero size", []colour.Colour{colour.New()}, 0},
		{"negative size", []colour.Colour{colour.New()}, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Swatch(tt.colours, tt.size); err == nil {
				t.Error("Swatch should fail")
			}
		})
	}
}

func TestCheckerboard(t *testing.T) {
	board := checkerboard(16)
	if b := board.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("dimensions: got %dx%d, want 16x16", b.Dx(), b.Dy())
	}
	if got := board.NRGBAAt(0, 0); got != checkerLight {
		t.Errorf("(0,0): got %v, want light", got)
	}
	if got := board.NRGBAAt(2, 0); got != checkerDark {
		t.Errorf("(2,0): got %v, want dark", got)
	}
	if got := board.NRGBAAt(2, 2); got != checkerLight {
		t.Errorf("(2,2): got %v, want light", got)
	}

	tiny := checkerboard(3)
	if got := tiny.NRGBAAt(1, 0); got != checkerDark {
		t.Errorf("tiny (1,0): got %v, want dark", got)
	}
}
