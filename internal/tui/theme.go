package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

// =============================================================================
// Color Palettes
// =============================================================================

type palette struct {
	fg      lipgloss.Color
	muted   lipgloss.Color
	dim     lipgloss.Color
	accent  lipgloss.Color
	accent2 lipgloss.Color
	border  lipgloss.Color
	success lipgloss.Color
	errorFg lipgloss.Color
}

var (
	darkPalette = palette{
		fg:      lipgloss.Color("255"),
		muted:   lipgloss.Color("245"),
		dim:     lipgloss.Color("240"),
		accent:  lipgloss.Color("36"),
		accent2: lipgloss.Color("75"),
		border:  lipgloss.Color("238"),
		success: lipgloss.Color("35"),
		errorFg: lipgloss.Color("167"),
	}

	lightPalette = palette{
		fg:      lipgloss.Color("235"),
		muted:   lipgloss.Color("242"),
		dim:     lipgloss.Color("248"),
		accent:  lipgloss.Color("30"),
		accent2: lipgloss.Color("25"),
		border:  lipgloss.Color("250"),
		success: lipgloss.Color("28"),
		errorFg: lipgloss.Color("124"),
	}
)

// =============================================================================
// Styles
// =============================================================================

// styles is every style the page uses, derived from one theme.
type styles struct {
	theme prefs.Theme

	text      lipgloss.Style
	muted     lipgloss.Style
	dim       lipgloss.Style
	accent    lipgloss.Style
	link      lipgloss.Style
	heading   lipgloss.Style
	hero      lipgloss.Style
	dud       lipgloss.Style
	navItem   lipgloss.Style
	navActive lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style
	cardTitle    lipgloss.Style
	filter       lipgloss.Style
	filterActive lipgloss.Style

	cliBox    lipgloss.Style
	cliPrompt lipgloss.Style
	cliCmd    lipgloss.Style
	cliOutput lipgloss.Style

	modal       lipgloss.Style
	modalTitle  lipgloss.Style
	paletteItem lipgloss.Style
	paletteSel  lipgloss.Style

	status      lipgloss.Style
	statusError lipgloss.Style
}

func newStyles(theme prefs.Theme) styles {
	p := darkPalette
	if theme == prefs.Light {
		p = lightPalette
	}

	return styles{
		theme: theme,

		text:      lipgloss.NewStyle().Foreground(p.fg),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		dim:       lipgloss.NewStyle().Foreground(p.dim),
		accent:    lipgloss.NewStyle().Foreground(p.accent),
		link:      lipgloss.NewStyle().Foreground(p.accent2).Underline(true),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1),
		hero:      lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		dud:       lipgloss.NewStyle().Foreground(p.dim),
		navItem:   lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		navActive: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true).Padding(0, 1),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		cardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),
		cardTitle:    lipgloss.NewStyle().Bold(true).Foreground(p.fg),
		filter:       lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		filterActive: lipgloss.NewStyle().Foreground(p.accent).Bold(true).Padding(0, 1),

		cliBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		cliPrompt: lipgloss.NewStyle().Foreground(p.success),
		cliCmd:    lipgloss.NewStyle().Foreground(p.fg).Bold(true),
		cliOutput: lipgloss.NewStyle().Foreground(p.muted),

		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		modalTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		paletteItem: lipgloss.NewStyle().Foreground(p.fg).Padding(0, 1),
		paletteSel:  lipgloss.NewStyle().Foreground(p.accent).Bold(true).Reverse(true).Padding(0, 1),

		status:      lipgloss.NewStyle().Foreground(p.muted),
		statusError: lipgloss.NewStyle().Foreground(p.errorFg),
	}
}

// heroMarkup renders scramble frames with settled text in the hero style
// and noise glyphs dimmed.
func (s styles) heroMarkup() scramble.Markup {
	return scramble.Styled(s.hero, s.dud)
}

// themeIcon is the toggle indicator shown in the nav bar.
func themeIcon(t prefs.Theme) string {
	if t == prefs.Light {
		return "☾"
	}
	return "☀"
}
