// Package preview renders colours as blocks of terminal colour with their
// notations alongside.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/colour-mcp/internal/colour"
)

// blockWidth is the number of cells in a rendered colour block.
const blockWidth = 8

var labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Block returns a blockWidth-wide run of spaces painted with c. Terminals
// have no alpha, so the opaque RGB value is used. The hex text is printed in
// black or white, whichever contrasts with c.
func Block(c colour.Colour) string {
	fg := "#000000"
	if c.Lightness() < 50 {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Width(blockWidth).
		Render(c.Hex())
}

// Line renders one colour as a block followed by its rgb(), hsl() and
// keyword forms.
func Line(c colour.Colour) string {
	parts := []string{c.RGB(), c.HSL()}
	if name, ok := c.Name(); ok {
		parts = append(parts, name)
	}
	return Block(c) + " " + labelStyle.Render(strings.Join(parts, "  "))
}

// Render parses each argument and renders it on its own line.
func Render(args []string) (string, error) {
	var b strings.Builder
	for _, arg := range args {
		c, err := colour.Parse(arg)
		if err != nil {
			return "", fmt.Errorf("preview %q: %w", arg, err)
		}
		b.WriteString(Line(c))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
