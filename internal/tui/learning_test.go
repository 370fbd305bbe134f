package tui

import (
	"testing"

	"github.com/matzehuels/folio/pkg/content"
)

var testItems = []content.LearningItem{
	{Text: "Blazor", Desc: "Exploring client-side web UI with C#."},
	{Text: "Minimal APIs", Desc: "Mastering lightweight API development in .NET."},
}

func TestLearningLoop(t *testing.T) {
	l := newLearning(testItems)

	if cmd := l.start(); cmd == nil {
		t.Fatal("start returned no timer")
	}
	if len(l.lines) != 1 || l.lines[0].output || l.lines[0].text != "Blazor" {
		t.Fatalf("lines after start = %+v", l.lines)
	}
	if l.start() != nil {
		t.Error("start while running should do nothing")
	}

	gen := l.gen
	l.update(learnMsg{gen: gen, step: learnStepOutput})
	if got := l.lines[1]; !got.output || got.text != "> Exploring client-side web UI with C#." {
		t.Errorf("output line = %+v", got)
	}

	l.update(learnMsg{gen: gen, step: learnStepNext})
	l.update(learnMsg{gen: gen, step: learnStepOutput})
	if len(l.lines) != 4 {
		t.Fatalf("len(lines) = %d after both items, want 4", len(l.lines))
	}

	// After the last item the body is kept until the loop delay clears it.
	if cmd := l.update(learnMsg{gen: gen, step: learnStepNext}); cmd == nil {
		t.Fatal("expected the loop timer")
	}
	if len(l.lines) != 4 || l.current != 0 {
		t.Errorf("lines = %d current = %d, want 4 and 0", len(l.lines), l.current)
	}

	l.update(learnMsg{gen: gen, step: learnStepClear})
	if len(l.lines) != 1 || l.lines[0].text != "Blazor" {
		t.Errorf("lines after clear = %+v, want the first prompt", l.lines)
	}
}

func TestLearningIgnoresStaleTimers(t *testing.T) {
	l := newLearning(testItems)
	l.start()
	stale := learnMsg{gen: l.gen - 1, step: learnStepOutput}

	if cmd := l.update(stale); cmd != nil {
		t.Error("stale timer scheduled more work")
	}
	if len(l.lines) != 1 {
		t.Errorf("stale timer changed the body: %+v", l.lines)
	}
}

func TestLearningNoItems(t *testing.T) {
	l := newLearning(nil)
	if l.start() != nil || l.running {
		t.Error("widget with no items should not start")
	}
	if l.height() != 1 {
		t.Errorf("height() = %d, want 1", l.height())
	}
}

func TestLearningHeightFixed(t *testing.T) {
	l := newLearning(testItems)
	s := newStyles("dark")
	before := l.view(s, 60)
	l.start()
	l.update(learnMsg{gen: l.gen, step: learnStepOutput})
	after := l.view(s, 60)

	if got, want := countLines(after), countLines(before); got != want {
		t.Errorf("widget grew from %d to %d lines", want, got)
	}
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
