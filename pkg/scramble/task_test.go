package scramble

import (
	"math/rand"
	"strings"
	"testing"
)

func seeded(seed int64, opts ...Option) Options {
	o := DefaultOptions()
	o.Rand = rand.New(rand.NewSource(seed))
	for _, opt := range opts {
		opt(&o)
	}
	return o.normalized()
}

// runTask ticks t to completion and returns every rendered frame.
func runTask(t *testing.T, task *Task, limit int) []Frame {
	t.Helper()
	var frames []Frame
	for i := 0; i < limit; i++ {
		frame, done := task.Tick()
		frames = append(frames, frame)
		if done {
			return frames
		}
	}
	t.Fatalf("task did not finish within %d ticks", limit)
	return nil
}

func TestNewTaskFromEmpty(t *testing.T) {
	task := NewTask("", "Hi", seeded(1))

	cells := task.Cells()
	if len(cells) != 2 {
		t.Fatalf("len(cells) = %d, want 2", len(cells))
	}
	want := []struct{ from, to string }{{"", "H"}, {"", "i"}}
	for i, w := range want {
		if cells[i].From != w.from || cells[i].To != w.to {
			t.Errorf("cell %d = (%q, %q), want (%q, %q)", i, cells[i].From, cells[i].To, w.from, w.to)
		}
	}

	frames := runTask(t, task, 2+78+1)
	if got := frames[len(frames)-1].String(); got != "Hi" {
		t.Errorf("final frame = %q, want %q", got, "Hi")
	}
}

func TestNewTaskTruncates(t *testing.T) {
	task := NewTask("Hello", "Hi", seeded(2))

	cells := task.Cells()
	if len(cells) != 5 {
		t.Fatalf("len(cells) = %d, want 5", len(cells))
	}
	for i := 2; i < 5; i++ {
		if cells[i].To != "" {
			t.Errorf("cell %d To = %q, want empty", i, cells[i].To)
		}
	}

	frames := runTask(t, task, 5+78+1)
	final := frames[len(frames)-1]
	if got := final.String(); got != "Hi" {
		t.Errorf("final frame = %q, want %q", got, "Hi")
	}
	if len(final) != 5 {
		t.Errorf("final frame has %d glyphs, want one per cell", len(final))
	}
}

func TestNewTaskRuneCells(t *testing.T) {
	task := NewTask("héllo", "wörld—", seeded(3))
	if task.Len() != 6 {
		t.Fatalf("Len() = %d, want 6 rune cells", task.Len())
	}
	frames := runTask(t, task, 100)
	if got := frames[len(frames)-1].String(); got != "wörld—" {
		t.Errorf("final frame = %q, want %q", got, "wörld—")
	}
}

func TestCellWindows(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		task := NewTask(strings.Repeat("x", 20), strings.Repeat("y", 30), seeded(seed))
		for i, c := range task.Cells() {
			if c.End < c.Start {
				t.Fatalf("seed %d cell %d: End %d < Start %d", seed, i, c.End, c.Start)
			}
			if c.Start < 0 || c.Start >= DefaultMaxStart {
				t.Fatalf("seed %d cell %d: Start %d out of [0, %d)", seed, i, c.Start, DefaultMaxStart)
			}
			if c.End-c.Start >= DefaultMaxDwell {
				t.Fatalf("seed %d cell %d: dwell %d out of [0, %d)", seed, i, c.End-c.Start, DefaultMaxDwell)
			}
		}
	}
}

func TestTickTermination(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
	}{
		{"empty to empty", "", ""},
		{"empty to text", "", "Hello, I'm Cynthia Motaung"},
		{"text to empty", "Loading...", ""},
		{"grow", "Hi", "Hello there"},
		{"shrink", "Hello there", "Hi"},
		{"same", "unchanged", "unchanged"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				task := NewTask(tt.source, tt.target, seeded(seed))
				bound := max(len([]rune(tt.source)), len([]rune(tt.target))) + 78
				frames := runTask(t, task, bound+1)

				final := frames[len(frames)-1]
				if got := final.String(); got != tt.target {
					t.Fatalf("seed %d: final = %q, want %q", seed, got, tt.target)
				}
				if final.NoiseCount() != 0 {
					t.Fatalf("seed %d: final frame still has noise", seed)
				}
				if !task.Done() {
					t.Fatalf("seed %d: Done() = false after final tick", seed)
				}
				if task.Frame() != task.LastFrame() {
					t.Fatalf("seed %d: finished on frame %d, last cell settles on %d", seed, task.Frame(), task.LastFrame())
				}
			}
		})
	}
}

func TestTickMonotonicSettling(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		task := NewTask("The quick brown fox", "jumps over the lazy dog", seeded(seed))
		cells := task.Cells()
		settledAt := make([]int, len(cells))
		for i := range settledAt {
			settledAt[i] = -1
		}

		for f, frame := range runTask(t, task, 200) {
			for i, g := range frame {
				c := cells[i]
				switch c.State(f) {
				case Settled:
					if g.Noise || g.Text != c.To {
						t.Fatalf("seed %d frame %d cell %d: settled cell shows %+v, want %q", seed, f, i, g, c.To)
					}
					if settledAt[i] < 0 {
						settledAt[i] = f
					}
				case Scrambling:
					if settledAt[i] >= 0 {
						t.Fatalf("seed %d frame %d cell %d: scrambling after settling on frame %d", seed, f, i, settledAt[i])
					}
					if !g.Noise {
						t.Fatalf("seed %d frame %d cell %d: scrambling cell not marked as noise", seed, f, i)
					}
				case Pending:
					if settledAt[i] >= 0 {
						t.Fatalf("seed %d frame %d cell %d: pending after settling", seed, f, i)
					}
					if g.Noise || g.Text != c.From {
						t.Fatalf("seed %d frame %d cell %d: pending cell shows %+v, want %q", seed, f, i, g, c.From)
					}
				}
			}
		}
	}
}

func TestNoiseFromAlphabet(t *testing.T) {
	task := NewTask("", strings.Repeat("a", 40), seeded(7, WithAlphabet("#%")))
	for _, frame := range runTask(t, task, 200) {
		for _, g := range frame {
			if g.Noise && g.Text != "#" && g.Text != "%" {
				t.Fatalf("noise glyph %q not in alphabet", g.Text)
			}
		}
	}
}

func TestNoiseHeldWithoutReroll(t *testing.T) {
	task := NewTask("", strings.Repeat("a", 10), seeded(11, WithRerollChance(0)))
	seen := make(map[int]string)

	for _, frame := range runTask(t, task, 200) {
		for i, g := range frame {
			if !g.Noise {
				continue
			}
			if prev, ok := seen[i]; ok && prev != g.Text {
				t.Fatalf("cell %d noise changed from %q to %q with reroll chance 0", i, prev, g.Text)
			}
			seen[i] = g.Text
		}
	}
}

func TestZeroWindowsSettleImmediately(t *testing.T) {
	task := NewTask("abc", "xyz", seeded(1, WithMaxStart(0), WithMaxDwell(0)))

	frame, done := task.Tick()
	if !done {
		t.Fatal("expected the first tick to finish when every window is empty")
	}
	if frame.String() != "xyz" {
		t.Errorf("frame = %q, want %q", frame.String(), "xyz")
	}
	if task.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0", task.Frame())
	}

	// Re-ticking a finished task re-renders the final frame.
	again, done := task.Tick()
	if !done || again.String() != "xyz" {
		t.Errorf("re-tick = (%q, %v), want (%q, true)", again.String(), done, "xyz")
	}
}

func TestMaxFrames(t *testing.T) {
	if got := DefaultOptions().MaxFrames(); got != 78 {
		t.Errorf("MaxFrames() = %d, want 78", got)
	}
	o := Options{MaxStart: 0, MaxDwell: 5}
	if got := o.MaxFrames(); got != 4 {
		t.Errorf("MaxFrames() = %d, want 4", got)
	}
}

func TestFrameHelpers(t *testing.T) {
	frame := Frame{{Text: "a"}, {Text: "#", Noise: true}, {Text: ""}, {Text: "c"}}
	if got := frame.String(); got != "a#c" {
		t.Errorf("String() = %q", got)
	}
	if got := frame.Settled(); got != "ac" {
		t.Errorf("Settled() = %q", got)
	}
	if got := frame.NoiseCount(); got != 1 {
		t.Errorf("NoiseCount() = %d", got)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Pending: "pending", Scrambling: "scrambling", Settled: "settled", State(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
