package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/folio/pkg/content"
)

// Learning widget timings.
const (
	learnOutputDelay = 1000 * time.Millisecond
	learnNextDelay   = 1500 * time.Millisecond
	learnLoopDelay   = 3000 * time.Millisecond
)

type learnStep int

const (
	learnStepOutput learnStep = iota // print the description of the current item
	learnStepNext                    // type the next command
	learnStepClear                   // clear the body and start over
)

// learnMsg advances the learning widget. Messages from an earlier run carry
// a stale generation and are dropped.
type learnMsg struct {
	gen  uint64
	step learnStep
}

type cliLine struct {
	output bool
	text   string
}

// learning is the "currently learning" terminal widget. It types
// `~ learn --now <item>`, prints the description a second later, moves on
// after another 1.5s and loops 3s after the last item.
type learning struct {
	items   []content.LearningItem
	running bool
	gen     uint64
	current int
	lines   []cliLine
}

func newLearning(items []content.LearningItem) *learning {
	return &learning{items: items}
}

// start begins the loop unless it is already running.
func (l *learning) start() tea.Cmd {
	if l.running || len(l.items) == 0 {
		return nil
	}
	l.running = true
	l.gen++
	l.current = 0
	l.lines = nil
	return l.typeCommand()
}

// update handles a learnMsg.
func (l *learning) update(msg learnMsg) tea.Cmd {
	if !l.running || msg.gen != l.gen {
		return nil
	}
	switch msg.step {
	case learnStepOutput:
		item := l.items[l.current]
		l.lines = append(l.lines, cliLine{output: true, text: "> " + item.Desc})
		l.current++
		return l.after(learnNextDelay, learnStepNext)
	case learnStepNext:
		return l.typeCommand()
	case learnStepClear:
		l.lines = nil
		return l.typeCommand()
	}
	return nil
}

func (l *learning) typeCommand() tea.Cmd {
	if l.current >= len(l.items) {
		l.current = 0
		return l.after(learnLoopDelay, learnStepClear)
	}
	l.lines = append(l.lines, cliLine{text: l.items[l.current].Text})
	return l.after(learnOutputDelay, learnStepOutput)
}

func (l *learning) after(d time.Duration, step learnStep) tea.Cmd {
	msg := learnMsg{gen: l.gen, step: step}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// height is the fixed body height: one prompt and one output per item.
func (l *learning) height() int {
	return max(2*len(l.items), 1)
}

func (l *learning) view(s styles, width int) string {
	rows := make([]string, 0, l.height())
	for _, line := range l.lines {
		if line.output {
			rows = append(rows, s.cliOutput.Render(line.text))
		} else {
			rows = append(rows, s.cliPrompt.Render("~ learn --now")+" "+s.cliCmd.Render(line.text))
		}
	}
	for len(rows) < l.height() {
		rows = append(rows, "")
	}
	return s.cliBox.Width(max(width-2, 20)).Render(strings.Join(rows, "\n"))
}
