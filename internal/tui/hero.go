package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/folio/pkg/scramble"
)

// heroDelay is how long the hero waits after being revealed before the
// greeting scrambles in.
const heroDelay = time.Second

// heroTriggerMsg fires heroDelay after the hero section is revealed.
type heroTriggerMsg struct{}

// heroFrameMsg advances the hero animation by one frame.
type heroFrameMsg struct{}

// hero animates the greeting with a scramble.Animator. Frames are stepped
// by a manual scheduler driven from tea.Tick, so all animation state is
// touched only from Update.
type hero struct {
	animator *scramble.Animator
	surface  *scramble.BufferSurface
	sched    *scramble.ManualScheduler
	interval time.Duration
	greeting string

	triggered bool
	ticking   bool
	done      *scramble.Completion
}

func newHero(greeting string, fps int, opts ...scramble.Option) *hero {
	if fps <= 0 {
		fps = 60
	}
	surface := scramble.NewBufferSurface("")
	sched := scramble.NewManualScheduler()
	return &hero{
		animator: scramble.New(surface, sched, opts...),
		surface:  surface,
		sched:    sched,
		interval: time.Second / time.Duration(fps),
		greeting: greeting,
	}
}

// trigger schedules the greeting once. Later calls do nothing.
func (h *hero) trigger() tea.Cmd {
	if h.triggered {
		return nil
	}
	h.triggered = true
	return tea.Tick(heroDelay, func(time.Time) tea.Msg { return heroTriggerMsg{} })
}

// setText starts a transition to text, abandoning any in flight.
func (h *hero) setText(text string) tea.Cmd {
	h.done = h.animator.SetText(text)
	return h.schedule()
}

// step runs one frame.
func (h *hero) step() tea.Cmd {
	h.ticking = false
	h.sched.Step()
	return h.schedule()
}

// schedule keeps a single tick chain alive while frames are pending.
func (h *hero) schedule() tea.Cmd {
	if h.ticking || h.sched.Pending() == 0 {
		return nil
	}
	h.ticking = true
	return tea.Tick(h.interval, func(time.Time) tea.Msg { return heroFrameMsg{} })
}

// settled reports whether the most recent transition has finished.
func (h *hero) settled() bool {
	return h.done != nil && h.done.Resolved()
}

func (h *hero) text() string { return h.surface.Text() }

func (h *hero) view(s styles) string {
	if !h.triggered || h.surface.Frames() == 0 {
		return s.hero.Render(" ")
	}
	return scramble.Render(h.surface.Frame(), s.heroMarkup())
}
