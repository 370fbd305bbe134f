package tui

import (
	"testing"
)

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		name        string
		s           span
		top, height int
		want        float64
	}{
		{"fully inside", span{2, 6}, 0, 10, 1},
		{"above", span{0, 4}, 10, 10, 0},
		{"below", span{30, 40}, 0, 10, 0},
		{"half", span{8, 12}, 0, 10, 0.5},
		{"taller than viewport", span{0, 100}, 20, 10, 1},
		{"one line of ten", span{9, 19}, 0, 10, 0.1},
		{"empty span", span{5, 5}, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleFraction(tt.s, tt.top, tt.height); got != tt.want {
				t.Errorf("visibleFraction(%+v, %d, %d) = %v, want %v", tt.s, tt.top, tt.height, got, tt.want)
			}
		})
	}
}

func TestActiveSection(t *testing.T) {
	spans := []span{{0, 10}, {10, 25}, {25, 40}}

	tests := []struct {
		top, height, want int
	}{
		{0, 10, 0},  // middle row 5
		{0, 20, 1},  // middle row 10
		{20, 20, 2}, // middle row 30
		{40, 10, -1},
	}
	for _, tt := range tests {
		if got := activeSection(spans, tt.top, tt.height); got != tt.want {
			t.Errorf("activeSection(top=%d, height=%d) = %d, want %d", tt.top, tt.height, got, tt.want)
		}
	}
}

func TestObserveSectionsIsPermanent(t *testing.T) {
	r := newRevealer(3, 0)
	spans := []span{{0, 10}, {10, 20}, {20, 30}}

	if got := r.observeSections(spans, 0, 10); len(got) != 1 || got[0] != 0 {
		t.Fatalf("first pass revealed %v, want [0]", got)
	}
	// Scrolling past keeps earlier sections revealed.
	if got := r.observeSections(spans, 20, 10); len(got) != 1 || got[0] != 2 {
		t.Fatalf("second pass revealed %v, want [2]", got)
	}
	if !r.sectionShown(0) || r.sectionShown(1) || !r.sectionShown(2) {
		t.Errorf("sections = %v", r.sections)
	}
	if got := r.observeSections(spans, 0, 30); len(got) != 1 || got[0] != 1 {
		t.Errorf("third pass revealed %v, want [1]", got)
	}
}

func TestObserveSectionsThreshold(t *testing.T) {
	r := newRevealer(1, 0)
	// 20-line section, viewport of 10 rows showing only its first row.
	if got := r.observeSections([]span{{9, 29}}, 0, 10); len(got) != 1 {
		t.Errorf("a tenth of the viewport should reveal, got %v", got)
	}

	r = newRevealer(1, 0)
	if got := r.observeSections([]span{{9, 29}}, 0, 9); len(got) != 0 {
		t.Errorf("section outside the viewport revealed: %v", got)
	}
}

func TestObserveEntriesStaggered(t *testing.T) {
	r := newRevealer(0, 4)
	spans := []span{{0, 3}, {3, 6}, {6, 9}, {30, 33}}

	cmd := r.observeEntries(spans, 0, 10)
	if cmd == nil {
		t.Fatal("expected delayed reveals for the rest of the batch")
	}
	if !r.entryShown(0) {
		t.Error("first entry of the batch should show immediately")
	}
	if r.entries[1] != entryScheduled || r.entries[2] != entryScheduled {
		t.Errorf("entries = %v, want 1 and 2 scheduled", r.entries)
	}
	if r.entries[3] != entryHidden {
		t.Error("entry outside the viewport was touched")
	}

	r.showEntry(2)
	if !r.entryShown(2) {
		t.Error("showEntry did not reveal entry 2")
	}

	// Scheduled entries are not rescheduled.
	if cmd := r.observeEntries(spans[:3], 0, 10); cmd != nil {
		t.Error("second pass rescheduled entries")
	}
}

func TestObserveEntriesSingle(t *testing.T) {
	r := newRevealer(0, 1)
	if cmd := r.observeEntries([]span{{0, 3}}, 0, 10); cmd != nil {
		t.Error("a single entry needs no delayed reveal")
	}
	if !r.entryShown(0) {
		t.Error("entry not shown")
	}
}

func TestObserveEntriesStaggerCountsRevealedOnly(t *testing.T) {
	r := newRevealer(0, 3)
	// Entry 0 sits above the viewport; 1 and 2 are visible.
	spans := []span{{0, 3}, {20, 23}, {23, 26}}

	cmd := r.observeEntries(spans, 15, 20)
	if cmd == nil {
		t.Fatal("expected a delayed reveal for the second visible entry")
	}
	if r.entries[0] != entryHidden {
		t.Error("entry above the viewport was touched")
	}
	if !r.entryShown(1) {
		t.Error("first visible entry should show immediately even when an earlier entry is hidden")
	}
	if r.entries[2] != entryScheduled {
		t.Errorf("entries = %v, want entry 2 scheduled", r.entries)
	}
}
