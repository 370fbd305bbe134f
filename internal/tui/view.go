package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading...\n"
	}

	body := m.viewport.View()
	switch {
	case m.palette.open:
		body = m.overlay(m.palette.view(m.styles))
	case m.modal.isOpen():
		body = m.overlay(m.modal.view(m.styles, m.content, m.width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.navView(),
		"",
		body,
		m.statusView(),
		m.help.View(m.keys),
	)
}

// overlay centres box in the space normally taken by the page.
func (m Model) overlay(box string) string {
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) navView() string {
	s := m.styles
	items := []string{s.accent.Bold(true).Render(m.content.Owner.Name), " "}
	for _, id := range navSections {
		if id == m.active {
			items = append(items, s.navActive.Render(id.String()))
		} else {
			items = append(items, s.navItem.Render(id.String()))
		}
	}
	items = append(items, " ", s.muted.Render(themeIcon(m.theme)))
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	text := strings.TrimSpace(m.status)
	if m.statusErr {
		return m.styles.statusError.Render(text)
	}
	return m.styles.status.Render(text)
}
