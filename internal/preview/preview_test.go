package preview

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

func TestLine(t *testing.T) {
	out := Line(colour.MustParse("#ff0000"))

	for _, want := range []string{"#ff0000", "rgb(255, 0, 0)", "hsl(0, 100, 50)", "red"} {
		if !strings.Contains(out, want) {
			t.Errorf("Line output %q missing %q", out, want)
		}
	}
}

func TestLine_NoName(t *testing.T) {
	out := Line(colour.MustParse("#5baa30"))
	if !strings.Contains(out, "hsl(99, 56, 43)") {
		t.Errorf("Line output %q missing hsl", out)
	}
}

func TestRender(t *testing.T) {
	out, err := Render([]string{"cornflowerblue", "rgba(0, 0, 0, 0.5)"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "#6495ed") {
		t.Errorf("first line %q missing #6495ed", lines[0])
	}
	if !strings.Contains(lines[1], "rgba(0, 0, 0, 0.5)") {
		t.Errorf("second line %q missing rgba", lines[1])
	}
}

func TestRender_InvalidColour(t *testing.T) {
	_, err := Render([]string{"#ff0000", "bogus"})
	if !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("got %v, want ErrInvalidColour", err)
	}
}
