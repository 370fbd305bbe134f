package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/folio/pkg/content"
)

// gallery is the filterable project grid.
type gallery struct {
	content *content.Content
	filters []string
	active  int
	cursor  int
}

func newGallery(c *content.Content) *gallery {
	return &gallery{content: c, filters: c.Filters()}
}

func (g *gallery) filter() string { return g.filters[g.active] }

// visible returns the projects shown under the active filter.
func (g *gallery) visible() []content.Project {
	return g.content.FilterProjects(g.filter())
}

// cycle moves the active filter by delta, wrapping, and resets the cursor.
func (g *gallery) cycle(delta int) {
	n := len(g.filters)
	g.active = ((g.active+delta)%n + n) % n
	g.cursor = 0
}

// move shifts the selected card by delta, clamped to the visible cards.
func (g *gallery) move(delta int) {
	n := len(g.visible())
	if n == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(g.cursor+delta, 0), n-1)
}

// selected returns the card under the cursor.
func (g *gallery) selected() (content.Project, bool) {
	projects := g.visible()
	if g.cursor < 0 || g.cursor >= len(projects) {
		return content.Project{}, false
	}
	return projects[g.cursor], true
}

func (g *gallery) view(s styles, width int) string {
	var tabs []string
	for i, f := range g.filters {
		label := capitalize(f)
		if i == g.active {
			tabs = append(tabs, s.filterActive.Render("["+label+"]"))
		} else {
			tabs = append(tabs, s.filter.Render(label))
		}
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), ""}
	cardWidth := max(width-4, 20)
	for i, p := range g.visible() {
		style := s.card
		if i == g.cursor {
			style = s.cardSelected
		}
		body := s.cardTitle.Render(p.Title) + "\n" + s.muted.Render(p.Summary)
		if len(p.Tech) > 0 {
			body += "\n" + s.dim.Render(strings.Join(p.Tech, " · "))
		}
		rows = append(rows, style.Width(cardWidth).Render(body))
	}
	if len(g.visible()) == 0 {
		rows = append(rows, s.dim.Render("No projects in this category."))
	}
	return strings.Join(rows, "\n")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
