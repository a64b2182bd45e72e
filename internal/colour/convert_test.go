package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRGBToHSL_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		h, s, l float64
	}{
		{"pure red", 255, 0, 0, 0, 100, 50},
		{"pure green", 0, 255, 0, 120, 100, 50},
		{"pure blue", 0, 0, 255, 240, 100, 50},
		{"yellow", 255, 255, 0, 60, 100, 50},
		{"magenta", 255, 0, 255, 300, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50.19607843137255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Colour{red: tt.r, green: tt.g, blue: tt.b, alpha: 1}
			rgbToHSL(&c)
			if !almostEqual(c.hue, tt.h, 1e-9) || !almostEqual(c.saturation, tt.s, 1e-9) || !almostEqual(c.lightness, tt.l, 1e-9) {
				t.Errorf("HSL: got (%v,%v,%v), want (%v,%v,%v)", c.hue, c.saturation, c.lightness, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestRGBToHSL_ClampsInput(t *testing.T) {
	c := Colour{red: 999, green: -20, blue: 300, alpha: 3}
	rgbToHSL(&c)

	if c.red != 255 || c.green != 0 || c.blue != 255 {
		t.Errorf("RGB: got (%v,%v,%v), want (255,0,255)", c.red, c.green, c.blue)
	}
	if c.alpha != 1 {
		t.Errorf("Alpha: got %v, want 1", c.alpha)
	}
	if !almostEqual(c.hue, 300, 1e-9) {
		t.Errorf("Hue: got %v, want 300", c.hue)
	}
}

func TestHSLToRGB_NormalizesInput(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		wantH   float64
		wantS   float64
		wantL   float64
	}{
		{"hue over range", 480, 50, 50, 120, 50, 50},
		{"negative hue", -90, 50, 50, 270, 50, 50},
		{"hue exactly 360", 360, 50, 50, 0, 50, 50},
		{"saturation over range", 10, 150, 50, 10, 100, 50},
		{"negative lightness", 10, 50, -5, 10, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Colour{hue: tt.h, saturation: tt.s, lightness: tt.l, alpha: 1}
			hslToRGB(&c)
			if !almostEqual(c.hue, tt.wantH, 1e-9) || c.saturation != tt.wantS || c.lightness != tt.wantL {
				t.Errorf("HSL: got (%v,%v,%v), want (%v,%v,%v)",
					c.hue, c.saturation, c.lightness, tt.wantH, tt.wantS, tt.wantL)
			}
		})
	}
}

func TestRoundTrip_RGB(t *testing.T) {
	for r := 0.0; r <= 255; r += 15 {
		for g := 0.0; g <= 255; g += 15 {
			for b := 0.0; b <= 255; b += 15 {
				c := FromRGB(r, g, b, 0.4)
				back := FromHSL(c.Hue(), c.Saturation(), c.Lightness(), c.Alpha())
				if !almostEqual(back.Red(), r, 0.5) || !almostEqual(back.Green(), g, 0.5) || !almostEqual(back.Blue(), b, 0.5) {
					t.Fatalf("round trip (%v,%v,%v): got (%v,%v,%v)", r, g, b, back.Red(), back.Green(), back.Blue())
				}
				if back.Alpha() != 0.4 {
					t.Fatalf("round trip alpha: got %v, want 0.4", back.Alpha())
				}
			}
		}
	}
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	for r := 0.0; r <= 255; r += 17 {
		for g := 0.0; g <= 255; g += 17 {
			for b := 0.0; b <= 255; b += 17 {
				c := FromRGB(r, g, b, 1)
				h, s, l := colorful.Color{R: r / 255, G: g / 255, B: b / 255}.Hsl()

				if !almostEqual(c.Hue(), h, 1e-9) {
					t.Fatalf("hue for (%v,%v,%v): got %v, colorful %v", r, g, b, c.Hue(), h)
				}
				if !almostEqual(c.Saturation(), s*100, 1e-9) {
					t.Fatalf("saturation for (%v,%v,%v): got %v, colorful %v", r, g, b, c.Saturation(), s*100)
				}
				if !almostEqual(c.Lightness(), l*100, 1e-9) {
					t.Fatalf("lightness for (%v,%v,%v): got %v, colorful %v", r, g, b, c.Lightness(), l*100)
				}
			}
		}
	}
}

func TestHSLToRGB_MatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 7 {
		for _, s := range []float64{0, 10, 42, 75, 100} {
			for _, l := range []float64{0, 12, 50, 84, 100} {
				c := FromHSL(h, s, l, 1)
				want := colorful.Hsl(h, s/100, l/100)

				if !almostEqual(c.Red(), want.R*255, 1e-6) ||
					!almostEqual(c.Green(), want.G*255, 1e-6) ||
					!almostEqual(c.Blue(), want.B*255, 1e-6) {
					t.Fatalf("hsl(%v,%v,%v): got (%v,%v,%v), colorful (%v,%v,%v)",
						h, s, l, c.Red(), c.Green(), c.Blue(), want.R*255, want.G*255, want.B*255)
				}
			}
		}
	}
}

func TestHueToChannel_Regions(t *testing.T) {
	m1, m2 := 0.2, 0.8

	tests := []struct {
		name string
		h    float64
		want float64
	}{
		{"rising edge", 0.1, 0.2 + 0.6*0.6},
		{"plateau", 0.3, 0.8},
		{"falling edge", 0.6, 0.2 + 0.6*(2.0/3.0-0.6)*6},
		{"floor", 0.9, 0.2},
		{"wraps negative", -0.9, 0.2 + 0.6*0.6},
		{"wraps over one", 1.3, 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hueToChannel(m1, m2, tt.h)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("hueToChannel(%v): got %v, want %v", tt.h, got, tt.want)
			}
		})
	}
}

func TestWrapHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{380, 20},
		{-90, 270},
		{-720, 0},
		{720.5, 0.5},
		{-1e-14, 0},
	}

	for _, tt := range tests {
		got := wrapHue(tt.in)
		if got < 0 || got >= 360 {
			t.Errorf("wrapHue(%v) = %v, outside [0, 360)", tt.in, got)
		}
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("wrapHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0.5, 0, 1, 0.5},
		{1.5, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
