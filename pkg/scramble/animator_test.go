package scramble

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/folio/pkg/observability"
)

func TestAnimatorSetText(t *testing.T) {
	surface := NewBufferSurface("")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(1))

	done := a.SetText("Hi")

	if surface.Frames() != 1 {
		t.Fatalf("Frames() = %d after SetText, want the first frame rendered synchronously", surface.Frames())
	}
	if done.Resolved() {
		// Possible only when both cells drew empty windows; seed 1 does not.
		t.Fatal("completion resolved on the first frame")
	}
	if sched.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", sched.Pending())
	}

	sched.Run(100)

	if !done.Resolved() {
		t.Fatal("completion not resolved after running all frames")
	}
	if got := surface.Text(); got != "Hi" {
		t.Errorf("Text() = %q, want %q", got, "Hi")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d after completion, want 0", sched.Pending())
	}
	if a.Active() {
		t.Error("Active() = true after completion")
	}
	if surface.Frames() > 2+78+1 {
		t.Errorf("rendered %d frames, want at most %d", surface.Frames(), 2+78+1)
	}
}

func TestAnimatorTruncates(t *testing.T) {
	surface := NewBufferSurface("Hello")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(5))

	done := a.SetText("Hi")
	sched.Run(100)

	if !done.Resolved() {
		t.Fatal("completion not resolved")
	}
	if got := surface.Text(); got != "Hi" {
		t.Errorf("Text() = %q, want %q", got, "Hi")
	}
	if n := len(surface.Frame()); n != 5 {
		t.Errorf("final frame has %d glyphs, want 5", n)
	}
}

func TestAnimatorAbandonsPreviousTask(t *testing.T) {
	surface := NewBufferSurface("start")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(9))

	first := a.SetText("first target")
	second := a.SetText("second")

	if sched.Pending() != 1 {
		t.Fatalf("Pending() = %d after re-entrant SetText, want exactly one tick chain", sched.Pending())
	}
	if a.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", a.Generation())
	}

	for sched.Step() {
		if sched.Pending() > 1 {
			t.Fatalf("Pending() = %d, want at most 1", sched.Pending())
		}
	}

	if first.Resolved() {
		t.Error("abandoned completion resolved")
	}
	if !second.Resolved() {
		t.Error("current completion not resolved")
	}
	if got := surface.Text(); got != "second" {
		t.Errorf("Text() = %q, want %q", got, "second")
	}
}

func TestAnimatorAbandonMidFlight(t *testing.T) {
	surface := NewBufferSurface("")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(21))

	first := a.SetText("Hello, I'm Cynthia Motaung")
	for i := 0; i < 10; i++ {
		sched.Step()
	}
	mid := surface.Text()

	second := a.SetText("Bye")
	task := a.task
	if task.Source() != mid {
		t.Errorf("new task source = %q, want the on-screen text %q", task.Source(), mid)
	}

	sched.Run(200)

	if first.Resolved() {
		t.Error("abandoned completion resolved")
	}
	if !second.Resolved() || surface.Text() != "Bye" {
		t.Errorf("Text() = %q resolved=%v, want %q resolved", surface.Text(), second.Resolved(), "Bye")
	}
}

func TestAnimatorRestartSameText(t *testing.T) {
	surface := NewBufferSurface("")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(3))

	a.SetText("portfolio")
	sched.Run(200)
	before := surface.Frames()

	done := a.SetText("portfolio")
	if done.Resolved() {
		t.Fatal("restarting with the displayed text resolved immediately")
	}
	sched.Run(200)

	if !done.Resolved() {
		t.Fatal("restart never resolved")
	}
	if surface.Frames()-before < 2 {
		t.Errorf("restart rendered %d frames, want a full animation", surface.Frames()-before)
	}
	if surface.Text() != "portfolio" {
		t.Errorf("Text() = %q", surface.Text())
	}
}

func TestAnimatorImmediateCompletion(t *testing.T) {
	surface := NewBufferSurface("abc")
	sched := NewManualScheduler()
	a := New(surface, sched, WithMaxStart(0), WithMaxDwell(0))

	done := a.SetText("xyz")

	if !done.Resolved() {
		t.Fatal("expected completion on the first frame")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sched.Pending())
	}
	if surface.Text() != "xyz" {
		t.Errorf("Text() = %q", surface.Text())
	}
}

// recordingScheduler keeps every callback and ignores Cancel, so tests can
// fire a tick that belongs to a superseded task.
type recordingScheduler struct {
	mu  sync.Mutex
	fns []func()
}

func (s *recordingScheduler) Request(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fns = append(s.fns, fn)
	return FrameID(len(s.fns))
}

func (s *recordingScheduler) Cancel(FrameID) {}

func TestAnimatorIgnoresStaleTicks(t *testing.T) {
	surface := NewBufferSurface("")
	sched := &recordingScheduler{}
	a := New(surface, sched, WithSeed(4))

	a.SetText("old text")
	stale := sched.fns[0]
	a.SetText("new")

	frames := surface.Frames()
	stale()

	if surface.Frames() != frames {
		t.Errorf("stale tick rendered a frame: %d -> %d", frames, surface.Frames())
	}
	if len(sched.fns) != 2 {
		t.Errorf("stale tick scheduled another frame: %d callbacks", len(sched.fns))
	}
}

func TestAnimatorTickerScheduler(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sched := NewTickerScheduler(ctx, 240)
	defer sched.Stop()

	surface := NewBufferSurface("")
	a := New(surface, sched)

	if err := a.SetText("ticker").Wait(ctx); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}
	if got := surface.Text(); got != "ticker" {
		t.Errorf("Text() = %q, want %q", got, "ticker")
	}
}

type countingHooks struct {
	observability.NoopAnimationHooks
	mu                            sync.Mutex
	started, completed, abandoned int
	frames                        int
}

func (h *countingHooks) OnTaskStart(uint64, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *countingHooks) OnTaskComplete(_ uint64, frames int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
	h.frames = frames
}

func (h *countingHooks) OnTaskAbandoned(uint64, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.abandoned++
}

func TestAnimatorHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetAnimationHooks(hooks)
	defer observability.Reset()

	surface := NewBufferSurface("")
	sched := NewManualScheduler()
	a := New(surface, sched, WithSeed(8))

	a.SetText("one")
	a.SetText("two")
	sched.Run(200)

	if hooks.started != 2 || hooks.abandoned != 1 || hooks.completed != 1 {
		t.Errorf("hooks = started %d abandoned %d completed %d, want 2/1/1",
			hooks.started, hooks.abandoned, hooks.completed)
	}
	if hooks.frames != surface.Frames()-1 {
		t.Errorf("completed after %d frames, surface saw %d for the second task", hooks.frames, surface.Frames()-1)
	}
}
