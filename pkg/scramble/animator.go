package scramble

import (
	"sync"
	"time"

	"github.com/matzehuels/folio/pkg/observability"
)

// Surface is the display an Animator draws on.
type Surface interface {
	// Text returns the currently displayed plain text.
	Text() string
	// Render replaces the displayed content with frame.
	Render(frame Frame)
}

// Animator drives scramble transitions on a single surface. It owns at most
// one task at a time and is safe for concurrent use.
//
// Surface.Render is called with the Animator's lock held; it must not call
// back into the Animator.
type Animator struct {
	mu      sync.Mutex
	surface Surface
	sched   Scheduler
	opts    Options

	gen        uint64
	task       *Task
	completion *Completion
	started    time.Time
	pending    FrameID
	hasPending bool
}

// New binds an Animator to surface, scheduling frames with sched.
func New(surface Surface, sched Scheduler, opts ...Option) *Animator {
	return &Animator{
		surface: surface,
		sched:   sched,
		opts:    buildOptions(opts),
	}
}

// SetText starts a transition from the surface's current text to target and
// returns a handle that resolves once every character has settled.
//
// Any transition already running is abandoned: its next frame is cancelled
// and its handle never resolves. The first frame is rendered before SetText
// returns.
func (a *Animator) SetText(target string) *Completion {
	a.mu.Lock()

	if a.task != nil {
		observability.Animation().OnTaskAbandoned(a.gen, a.task.Frame())
	}
	if a.hasPending {
		a.sched.Cancel(a.pending)
		a.hasPending = false
	}

	a.gen++
	a.task = NewTask(a.surface.Text(), target, a.opts)
	a.completion = newCompletion()
	a.started = time.Now()
	c := a.completion
	observability.Animation().OnTaskStart(a.gen, a.task.Len())

	finished := a.tickLocked(a.gen)
	a.mu.Unlock()

	if finished != nil {
		finished.resolve()
	}
	return c
}

// Active reports whether a transition is in progress.
func (a *Animator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.task != nil
}

// Generation returns the identity of the most recent transition. It
// increases by one on every SetText call.
func (a *Animator) Generation() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gen
}

func (a *Animator) tick(gen uint64) {
	a.mu.Lock()
	finished := a.tickLocked(gen)
	a.mu.Unlock()

	if finished != nil {
		finished.resolve()
	}
}

// tickLocked renders one frame of task gen. Stale generations are ignored.
// It returns the completion to resolve once the lock is released, or nil.
func (a *Animator) tickLocked(gen uint64) *Completion {
	if gen != a.gen || a.task == nil {
		return nil
	}
	a.hasPending = false

	frame, done := a.task.Tick()
	a.surface.Render(frame)

	if done {
		observability.Animation().OnTaskComplete(gen, a.task.Frame()+1, time.Since(a.started))
		c := a.completion
		a.task = nil
		a.completion = nil
		return c
	}

	a.pending = a.sched.Request(func() { a.tick(gen) })
	a.hasPending = true
	return nil
}
