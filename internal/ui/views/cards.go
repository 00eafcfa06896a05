package views

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"signassist/internal/domain"
)

// CardRenderer renders a sign description as markdown cards
type CardRenderer struct {
	width    int
	noColor  bool
	renderer *glamour.TermRenderer
}

// NewCardRenderer creates a card renderer. NO_COLOR switches to the plain style.
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{noColor: os.Getenv("NO_COLOR") != ""}
}

// CardMarkdown returns the markdown source for a description
func CardMarkdown(desc domain.SignDescription) string {
	var b strings.Builder
	b.WriteString("### ✋ Hand shape\n\n")
	b.WriteString(desc.HandShape)
	b.WriteString("\n\n### ↻ Movement\n\n")
	b.WriteString(desc.Movement)
	b.WriteString("\n")
	return b.String()
}

// Render renders desc wrapped to width. Falls back to plain text when
// glamour cannot render.
func (c *CardRenderer) Render(desc domain.SignDescription, width int) string {
	if width < 20 {
		width = 20
	}
	if c.renderer == nil || c.width != width {
		opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
		if c.noColor {
			opts = append(opts, glamour.WithStylePath("notty"))
		} else {
			opts = append(opts, glamour.WithStylePath("dark"))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return plainCards(desc)
		}
		c.renderer = r
		c.width = width
	}

	out, err := c.renderer.Render(CardMarkdown(desc))
	if err != nil {
		return plainCards(desc)
	}
	return strings.Trim(out, "\n")
}

func plainCards(desc domain.SignDescription) string {
	return fmt.Sprintf("Hand shape: %s\nMovement: %s", desc.HandShape, desc.Movement)
}
