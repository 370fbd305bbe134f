package tui

import (
	"strings"

	"github.com/matzehuels/folio/pkg/content"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalContact
	modalProject
)

// modal is an overlay dialog. While open it captures every key.
type modal struct {
	kind    modalKind
	project content.Project
}

func (m *modal) openContact() { *m = modal{kind: modalContact} }

func (m *modal) openProject(p content.Project) { *m = modal{kind: modalProject, project: p} }

func (m *modal) close() { *m = modal{} }

func (m *modal) isOpen() bool { return m.kind != modalNone }

func (m *modal) view(s styles, c *content.Content, width int) string {
	var rows []string
	switch m.kind {
	case modalContact:
		rows = append(rows, s.modalTitle.Render("Let's Connect"), "")
		if c.Owner.Email != "" {
			rows = append(rows, s.muted.Render("Email     ")+s.link.Render(c.Owner.Email))
		}
		if c.Links.GitHub != "" {
			rows = append(rows, s.muted.Render("GitHub    ")+s.link.Render(c.Links.GitHub))
		}
		if c.Links.LinkedIn != "" {
			rows = append(rows, s.muted.Render("LinkedIn  ")+s.link.Render(c.Links.LinkedIn))
		}
	case modalProject:
		p := m.project
		rows = append(rows, s.modalTitle.Render(p.Title), "")
		detail := p.Detail
		if detail == "" {
			detail = p.Summary
		}
		rows = append(rows, s.text.Render(detail))
		if len(p.Tech) > 0 {
			rows = append(rows, "", s.dim.Render(strings.Join(p.Tech, " · ")))
		}
		if p.URL != "" {
			rows = append(rows, "", s.link.Render(p.URL))
		}
	default:
		return ""
	}
	rows = append(rows, "", s.dim.Render("esc/x close"))
	return s.modal.Width(min(max(width-8, 30), 72)).Render(strings.Join(rows, "\n"))
}
