package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// revealThreshold is the visible share at which a section or resume
	// entry is revealed.
	revealThreshold = 0.10

	// learningThreshold is the visible share that starts the learning widget.
	learningThreshold = 0.60

	// entryStagger delays each resume entry revealed in the same pass.
	entryStagger = 150 * time.Millisecond
)

// span is a half-open line range [start, end) of the page.
type span struct {
	start, end int
}

func (s span) lines() int { return s.end - s.start }

// visibleFraction returns how much of s lies inside the viewport rows
// [top, top+height). The share is measured against the smaller of the span
// and the viewport, so a section taller than the screen still reaches 1.
func visibleFraction(s span, top, height int) float64 {
	if s.lines() <= 0 || height <= 0 {
		return 0
	}
	lo := max(s.start, top)
	hi := min(s.end, top+height)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(min(s.lines(), height))
}

// activeSection returns the index of the span crossing the middle row of the
// viewport, or -1.
func activeSection(spans []span, top, height int) int {
	mid := top + height/2
	for i, s := range spans {
		if mid >= s.start && mid < s.end {
			return i
		}
	}
	return -1
}

// revealEntryMsg shows one staggered resume entry.
type revealEntryMsg struct {
	index int
}

type entryState int

const (
	entryHidden entryState = iota
	entryScheduled
	entryShown
)

// revealer tracks which sections and resume entries have been revealed.
// Reveals are permanent.
type revealer struct {
	sections []bool
	entries  []entryState
}

func newRevealer(sections, entries int) *revealer {
	return &revealer{
		sections: make([]bool, sections),
		entries:  make([]entryState, entries),
	}
}

func (r *revealer) sectionShown(i int) bool {
	return i >= 0 && i < len(r.sections) && r.sections[i]
}

func (r *revealer) entryShown(i int) bool {
	return i >= 0 && i < len(r.entries) && r.entries[i] == entryShown
}

// observeSections reveals sections at or past the threshold and returns the
// indices revealed by this pass.
func (r *revealer) observeSections(spans []span, top, height int) []int {
	var revealed []int
	for i, s := range spans {
		if i >= len(r.sections) || r.sections[i] {
			continue
		}
		if visibleFraction(s, top, height) >= revealThreshold {
			r.sections[i] = true
			revealed = append(revealed, i)
		}
	}
	return revealed
}

// observeEntries finds hidden entries at or past the threshold. The first of
// the batch is shown immediately; the k-th is scheduled k*entryStagger later.
func (r *revealer) observeEntries(spans []span, top, height int) tea.Cmd {
	var cmds []tea.Cmd
	batch := 0
	for i, s := range spans {
		if i >= len(r.entries) || r.entries[i] != entryHidden {
			continue
		}
		if visibleFraction(s, top, height) < revealThreshold {
			continue
		}
		if batch == 0 {
			r.entries[i] = entryShown
		} else {
			r.entries[i] = entryScheduled
			idx := i
			cmds = append(cmds, tea.Tick(time.Duration(batch)*entryStagger, func(time.Time) tea.Msg {
				return revealEntryMsg{index: idx}
			}))
		}
		batch++
	}
	return tea.Batch(cmds...)
}

// showEntry completes a scheduled reveal.
func (r *revealer) showEntry(i int) {
	if i >= 0 && i < len(r.entries) {
		r.entries[i] = entryShown
	}
}
