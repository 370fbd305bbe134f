package scramble

import (
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markup turns frame glyphs into display markup.
type Markup interface {
	Plain(text string) string
	Noise(glyph string) string
}

// Render composes frame into a single string using m.
func Render(frame Frame, m Markup) string {
	var b strings.Builder
	for _, g := range frame {
		if g.Noise {
			b.WriteString(m.Noise(g.Text))
		} else {
			b.WriteString(m.Plain(g.Text))
		}
	}
	return b.String()
}

// HTMLMarkup escapes settled text and wraps noise glyphs in a span carrying
// Class, so stylesheets can tell unsettled characters apart.
type HTMLMarkup struct {
	Class string
}

// HTML is the markup used by the portfolio's web page.
var HTML = HTMLMarkup{Class: "dud"}

// Plain implements Markup.
func (m HTMLMarkup) Plain(text string) string { return html.EscapeString(text) }

// Noise implements Markup.
func (m HTMLMarkup) Noise(glyph string) string {
	return `<span class="` + html.EscapeString(m.Class) + `">` + html.EscapeString(glyph) + `</span>`
}

// StyledMarkup renders for terminals with lipgloss styles.
type StyledMarkup struct {
	Text lipgloss.Style
	Dud  lipgloss.Style
}

// Styled returns terminal markup that renders noise glyphs with dud and
// settled text with text.
func Styled(text, dud lipgloss.Style) StyledMarkup {
	return StyledMarkup{Text: text, Dud: dud}
}

// Plain implements Markup.
func (m StyledMarkup) Plain(text string) string {
	if text == "" {
		return ""
	}
	return m.Text.Render(text)
}

// Noise implements Markup.
func (m StyledMarkup) Noise(glyph string) string { return m.Dud.Render(glyph) }

// PlainMarkup emits glyphs unchanged.
type PlainMarkup struct{}

// Plain implements Markup.
func (PlainMarkup) Plain(text string) string { return text }

// Noise implements Markup.
func (PlainMarkup) Noise(glyph string) string { return glyph }

var (
	_ Markup = HTMLMarkup{}
	_ Markup = StyledMarkup{}
	_ Markup = PlainMarkup{}
)
