package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type commandID int

const (
	cmdHome commandID = iota
	cmdAbout
	cmdResume
	cmdSkills
	cmdProjects
	cmdToggleTheme
	cmdContact
	cmdViewSource
	cmdOpenGitHub
	cmdOpenLinkedIn
)

type command struct {
	id   commandID
	name string
}

var paletteCommands = []command{
	{cmdHome, "Home"},
	{cmdAbout, "About"},
	{cmdResume, "Resume"},
	{cmdSkills, "Skills"},
	{cmdProjects, "Projects"},
	{cmdToggleTheme, "Toggle Theme"},
	{cmdContact, "Contact Me"},
	{cmdViewSource, "View Source"},
	{cmdOpenGitHub, "Open GitHub"},
	{cmdOpenLinkedIn, "Open LinkedIn"},
}

// commandPalette is the ctrl+k launcher. Typing filters commands by
// case-insensitive substring; up and down wrap around the results.
type commandPalette struct {
	open    bool
	input   textinput.Model
	matches []command
	cursor  int
}

func newCommandPalette() commandPalette {
	input := textinput.New()
	input.Placeholder = "Type a command…"
	input.Prompt = "› "
	input.CharLimit = 40
	input.Width = 36
	return commandPalette{input: input}
}

// show opens the palette with every command listed and the first selected.
func (p *commandPalette) show() tea.Cmd {
	p.open = true
	p.input.SetValue("")
	p.filter()
	return p.input.Focus()
}

// hide closes the palette and clears the query.
func (p *commandPalette) hide() {
	p.open = false
	p.input.Blur()
	p.input.SetValue("")
	p.matches = nil
	p.cursor = 0
}

func (p *commandPalette) filter() {
	query := strings.ToLower(p.input.Value())
	p.matches = p.matches[:0]
	for _, c := range paletteCommands {
		if strings.Contains(strings.ToLower(c.name), query) {
			p.matches = append(p.matches, c)
		}
	}
	p.cursor = 0
}

// update handles a key while the palette is open. It returns the command to
// run when enter selects one; the palette is closed in that case.
func (p *commandPalette) update(msg tea.KeyMsg) (*command, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.hide()
		return nil, nil
	case "down", "ctrl+n":
		if len(p.matches) > 0 {
			p.cursor = (p.cursor + 1) % len(p.matches)
		}
		return nil, nil
	case "up", "ctrl+p":
		if len(p.matches) > 0 {
			p.cursor = (p.cursor - 1 + len(p.matches)) % len(p.matches)
		}
		return nil, nil
	case "enter":
		if len(p.matches) == 0 {
			return nil, nil
		}
		selected := p.matches[p.cursor]
		p.hide()
		return &selected, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filter()
	}
	return nil, cmd
}

func (p *commandPalette) view(s styles) string {
	rows := []string{p.input.View(), ""}
	if len(p.matches) == 0 {
		rows = append(rows, s.dim.Render("No results"))
	}
	for i, c := range p.matches {
		if i == p.cursor {
			rows = append(rows, s.paletteSel.Render(c.name))
		} else {
			rows = append(rows, s.paletteItem.Render(c.name))
		}
	}
	return s.modal.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
