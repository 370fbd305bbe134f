package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type sectionID int

const (
	sectionHome sectionID = iota
	sectionAbout
	sectionResume
	sectionSkills
	sectionLearning
	sectionProjects
	sectionContact
	numSections
)

var sectionNames = [numSections]string{
	"Home", "About", "Resume", "Skills", "Learning", "Projects", "Contact",
}

func (s sectionID) String() string {
	if s < 0 || s >= numSections {
		return "unknown"
	}
	return sectionNames[s]
}

// navSections are listed in the header.
var navSections = []sectionID{sectionHome, sectionAbout, sectionResume, sectionSkills, sectionProjects}

// page is the laid-out document shown in the viewport.
type page struct {
	lines    []string
	sections []span // indexed by sectionID
	entries  []span // resume entries
}

func (p *page) String() string { return strings.Join(p.lines, "\n") }

// add appends block and returns the lines it occupies.
func (p *page) add(block string) span {
	start := len(p.lines)
	p.lines = append(p.lines, strings.Split(block, "\n")...)
	return span{start: start, end: len(p.lines)}
}

// blank returns a block of n empty lines, used to hold the place of content
// that has not been revealed yet.
func blank(n int) string {
	return strings.Repeat("\n", max(n-1, 0))
}

// section renders body under a heading, or as blank lines of the same height
// while hidden.
func section(s styles, title, body string, shown bool) string {
	block := s.heading.Render(title) + "\n" + body + "\n"
	if shown {
		return block
	}
	return blank(lipgloss.Height(block))
}

// layout renders the whole page for the model's current state.
func (m *Model) layout() *page {
	p := &page{sections: make([]span, numSections)}
	s := m.styles
	w := m.contentWidth()
	shown := m.reveal.sectionShown

	// Home
	homeBody := m.hero.view(s) + "\n" + s.muted.Render(m.content.Hero.Tagline) + "\n\n" +
		s.dim.Render("press ctrl+k for commands, c to get in touch")
	p.sections[sectionHome] = p.add(section(s, m.content.Owner.Role, homeBody, shown(int(sectionHome))))

	// About
	aboutBody := s.text.Width(w).Render(strings.Join(m.content.About.Paragraphs, "\n\n"))
	p.sections[sectionAbout] = p.add(section(s, "About", aboutBody, shown(int(sectionAbout))))

	// Resume: each entry is tracked on its own for the staggered reveal.
	resumeStart := len(p.lines)
	p.add(s.heading.Render("Resume"))
	for i, e := range m.content.Resume {
		block := s.text.Bold(true).Render(e.Title) + s.dim.Render("  "+e.Period) + "\n" +
			s.accent.Render(e.Org) + "\n" +
			s.muted.Width(w).Render(e.Summary) + "\n"
		if !shown(int(sectionResume)) || !m.reveal.entryShown(i) {
			block = blank(lipgloss.Height(block))
		}
		p.entries = append(p.entries, p.add(block))
	}
	p.sections[sectionResume] = span{start: resumeStart, end: len(p.lines)}

	// Skills
	p.sections[sectionSkills] = p.add(section(s, "Skills", m.skillsTable(), shown(int(sectionSkills))))

	// Learning
	learnBody := m.learning.view(s, w)
	p.sections[sectionLearning] = p.add(section(s, "Currently Learning", learnBody, shown(int(sectionLearning))))

	// Projects
	p.sections[sectionProjects] = p.add(section(s, "Projects", m.gallery.view(s, w), shown(int(sectionProjects))))

	// Contact and footer
	contactBody := s.text.Render("Have a project in mind? Press ") + s.accent.Render("c") +
		s.text.Render(" to get in touch.") + "\n\n" +
		s.dim.Render(fmt.Sprintf("© %d %s", m.now().Year(), m.content.Owner.Name))
	p.sections[sectionContact] = p.add(section(s, "Contact", contactBody, shown(int(sectionContact))))

	return p
}

func (m *Model) skillsTable() string {
	s := m.styles
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.dim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.accent.Bold(true).Padding(0, 1)
			}
			if col == 0 {
				return s.text.Bold(true).Padding(0, 1)
			}
			return s.muted.Padding(0, 1)
		}).
		Headers("Area", "Skills")
	for _, g := range m.content.Skills {
		t.Row(g.Name, strings.Join(g.Items, ", "))
	}
	return t.Render()
}
