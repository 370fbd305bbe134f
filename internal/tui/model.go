// Package tui is the interactive terminal portfolio.
//
// The page is a single scrollable document (hero, about, resume, skills,
// currently learning, projects, contact) rendered into a bubbles viewport.
// Sections reveal themselves the first time they scroll into view; the hero
// greeting then scrambles in through a scramble.Animator.
package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/content"
	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

const (
	maxContentWidth = 96
	headerHeight    = 2
)

// Config wires runtime dependencies into the model.
type Config struct {
	Context context.Context
	Content *content.Content
	Store   prefs.Store
	Theme   prefs.Theme // overrides the stored theme when set
	Logger  *log.Logger
	Now     func() time.Time
	FPS     int

	// Scramble configures the hero animation.
	Scramble []scramble.Option
}

// themeSavedMsg reports the result of persisting a theme change.
type themeSavedMsg struct {
	theme prefs.Theme
	err   error
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	content *content.Content
	store   prefs.Store
	logger  *log.Logger
	now     func() time.Time

	theme  prefs.Theme
	styles styles
	keys   keyMap
	help   help.Model

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	hero     *hero
	reveal   *revealer
	learning *learning
	gallery  *gallery
	palette  commandPalette
	modal    modal
	page     *page
	active   sectionID

	status    string
	statusErr bool
}

// New creates the model. The initial theme comes from cfg.Theme or, when
// that is empty, from the store.
func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Content == nil {
		cfg.Content = content.Default()
	}
	if cfg.Store == nil {
		cfg.Store = prefs.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	theme := cfg.Theme
	if theme == "" {
		stored, err := prefs.LoadTheme(cfg.Context, cfg.Store)
		if err != nil {
			cfg.Logger.Warn("load theme", "err", err)
		}
		theme = stored
	}

	return Model{
		ctx:      cfg.Context,
		content:  cfg.Content,
		store:    cfg.Store,
		logger:   cfg.Logger,
		now:      cfg.Now,
		theme:    theme,
		styles:   newStyles(theme),
		keys:     defaultKeyMap,
		help:     help.New(),
		hero:     newHero(cfg.Content.Hero.Greeting, cfg.FPS, cfg.Scramble...),
		reveal:   newRevealer(int(numSections), len(cfg.Content.Resume)),
		learning: newLearning(cfg.Content.Learning),
		gallery:  newGallery(cfg.Content),
		palette:  newCommandPalette(),
	}
}

// Theme returns the active theme.
func (m Model) Theme() prefs.Theme { return m.theme }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.content.Owner.Name)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if m.ready && !m.palette.open && !m.modal.isOpen() {
			m.viewport, cmd = m.viewport.Update(msg)
		}

	case heroTriggerMsg:
		m.logger.Debug("scramble greeting", "text", m.content.Hero.Greeting)
		cmd = m.hero.setText(m.content.Hero.Greeting)

	case heroFrameMsg:
		cmd = m.hero.step()

	case learnMsg:
		cmd = m.learning.update(msg)

	case revealEntryMsg:
		m.reveal.showEntry(msg.index)

	case themeSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save theme", "theme", msg.theme, "err", msg.err)
			m.setStatus("could not save theme: "+msg.err.Error(), true)
		} else {
			m.logger.Debug("theme saved", "theme", msg.theme)
		}
	}

	return m, tea.Batch(cmd, m.refresh())
}

// resize fits the viewport between the header and the help footer.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := max(m.height-headerHeight-m.footerHeight(), 1)
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

func (m *Model) footerHeight() int {
	return 1 + lipgloss.Height(m.help.View(m.keys))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return maxContentWidth
	}
	return min(m.width-2, maxContentWidth)
}

// refresh lays out the page, reveals whatever is now in view and starts
// the animations that visibility triggers.
func (m *Model) refresh() tea.Cmd {
	if !m.ready {
		return nil
	}

	p := m.layout()
	m.viewport.SetContent(p.String())
	top, height := m.viewport.YOffset, m.viewport.Height

	var cmds []tea.Cmd
	for _, i := range m.reveal.observeSections(p.sections, top, height) {
		m.logger.Debug("section revealed", "section", sectionID(i))
		if sectionID(i) == sectionHome {
			cmds = append(cmds, m.hero.trigger())
		}
	}
	if m.reveal.sectionShown(int(sectionResume)) {
		cmds = append(cmds, m.reveal.observeEntries(p.entries, top, height))
	}
	if m.reveal.sectionShown(int(sectionLearning)) &&
		visibleFraction(p.sections[sectionLearning], top, height) >= learningThreshold {
		cmds = append(cmds, m.learning.start())
	}
	if a := activeSection(p.sections, top, height); a >= 0 {
		m.active = sectionID(a)
	}

	// Reveals keep every block's height, so the second pass only swaps
	// placeholders for content.
	m.page = m.layout()
	m.viewport.SetContent(m.page.String())
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.palette.open {
		selected, cmd := m.palette.update(msg)
		if selected != nil {
			return tea.Batch(cmd, m.run(selected.id))
		}
		return cmd
	}

	if m.modal.isOpen() {
		if key.Matches(msg, m.keys.Close) {
			m.modal.close()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Palette):
		return m.palette.show()
	case key.Matches(msg, m.keys.Contact):
		m.modal.openContact()
	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()
	case key.Matches(msg, m.keys.Replay):
		if m.hero.triggered {
			return m.hero.setText(m.content.Hero.Greeting)
		}
	case key.Matches(msg, m.keys.NextFilter):
		m.gallery.cycle(1)
	case key.Matches(msg, m.keys.PrevFilter):
		m.gallery.cycle(-1)
	case key.Matches(msg, m.keys.NextCard):
		m.gallery.move(1)
	case key.Matches(msg, m.keys.PrevCard):
		m.gallery.move(-1)
	case key.Matches(msg, m.keys.Open):
		if p, ok := m.gallery.selected(); ok {
			m.modal.openProject(p)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	default:
		if m.ready {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}
	return nil
}

// run executes a palette command.
func (m *Model) run(id commandID) tea.Cmd {
	switch id {
	case cmdHome:
		m.jumpTo(sectionHome)
	case cmdAbout:
		m.jumpTo(sectionAbout)
	case cmdResume:
		m.jumpTo(sectionResume)
	case cmdSkills:
		m.jumpTo(sectionSkills)
	case cmdProjects:
		m.jumpTo(sectionProjects)
	case cmdToggleTheme:
		return m.toggleTheme()
	case cmdContact:
		m.modal.openContact()
	case cmdViewSource:
		m.openURL(m.content.Links.Source)
	case cmdOpenGitHub:
		m.openURL(m.content.Links.GitHub)
	case cmdOpenLinkedIn:
		m.openURL(m.content.Links.LinkedIn)
	}
	return nil
}

func (m *Model) jumpTo(id sectionID) {
	if m.page == nil {
		return
	}
	m.viewport.SetYOffset(m.page.sections[id].start)
}

// openURL shows a link in the status line.
func (m *Model) openURL(url string) {
	if url == "" {
		m.setStatus("no link configured", true)
		return
	}
	m.logger.Info("open url", "url", url)
	m.setStatus("open "+url, false)
}

// toggleTheme flips the theme immediately and persists it in the background.
func (m *Model) toggleTheme() tea.Cmd {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)

	ctx, store, theme := m.ctx, m.store, m.theme
	return func() tea.Msg {
		return themeSavedMsg{theme: theme, err: prefs.SaveTheme(ctx, store, theme)}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}
