package scramble

import (
	"context"
	"sync"
	"time"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler runs callbacks once per display frame, like a browser's
// requestAnimationFrame. Request must not invoke fn synchronously.
type Scheduler interface {
	// Request schedules fn for the next frame.
	Request(fn func()) FrameID
	// Cancel drops a pending callback. Unknown or already-run IDs are ignored.
	Cancel(id FrameID)
}

// frameQueue is the pending-callback bookkeeping shared by schedulers.
type frameQueue struct {
	mu      sync.Mutex
	nextID  FrameID
	pending map[FrameID]func()
	order   []FrameID
}

func (q *frameQueue) request(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameID]func())
	}
	q.nextID++
	q.pending[q.nextID] = fn
	q.order = append(q.order, q.nextID)
	return q.nextID
}

func (q *frameQueue) cancel(id FrameID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.pending, id)
}

// drain removes and returns the callbacks pending right now, in request order.
// Callbacks requested while they run land in the next frame.
func (q *frameQueue) drain() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	fns := make([]func(), 0, len(q.pending))
	for _, id := range q.order {
		if fn, ok := q.pending[id]; ok {
			fns = append(fns, fn)
			delete(q.pending, id)
		}
	}
	q.order = q.order[:0]
	return fns
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// =============================================================================
// ManualScheduler
// =============================================================================

// ManualScheduler advances frames only when Step is called. It is intended for
// tests and for hosts that drive frames from their own loop.
type ManualScheduler struct {
	q      frameQueue
	frames int
}

// NewManualScheduler creates an idle manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Request implements Scheduler.
func (s *ManualScheduler) Request(fn func()) FrameID { return s.q.request(fn) }

// Cancel implements Scheduler.
func (s *ManualScheduler) Cancel(id FrameID) { s.q.cancel(id) }

// Pending returns the number of callbacks waiting for the next frame.
func (s *ManualScheduler) Pending() int { return s.q.len() }

// Frames returns how many frames Step has run.
func (s *ManualScheduler) Frames() int { return s.frames }

// Step runs one frame and reports whether any callback ran.
func (s *ManualScheduler) Step() bool {
	fns := s.q.drain()
	if len(fns) == 0 {
		return false
	}
	s.frames++
	for _, fn := range fns {
		fn()
	}
	return true
}

// Run steps until no callbacks are pending or limit frames have run, and
// returns the number of frames stepped.
func (s *ManualScheduler) Run(limit int) int {
	n := 0
	for n < limit && s.Step() {
		n++
	}
	return n
}

// =============================================================================
// TickerScheduler
// =============================================================================

// TickerScheduler runs pending callbacks on a fixed-rate ticker goroutine
// until its context is cancelled or Stop is called.
type TickerScheduler struct {
	q       frameQueue
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewTickerScheduler starts a scheduler firing fps times per second.
// Non-positive fps falls back to 60.
func NewTickerScheduler(ctx context.Context, fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	tctx, cancel := context.WithCancel(ctx)
	s := &TickerScheduler{
		ctx:     tctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.loop(time.Second / time.Duration(fps))
	return s
}

func (s *TickerScheduler) loop(interval time.Duration) {
	defer close(s.stopped)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			for _, fn := range s.q.drain() {
				fn()
			}
		}
	}
}

// Request implements Scheduler.
func (s *TickerScheduler) Request(fn func()) FrameID { return s.q.request(fn) }

// Cancel implements Scheduler.
func (s *TickerScheduler) Cancel(id FrameID) { s.q.cancel(id) }

// Stop halts the ticker and waits for an in-progress frame to finish.
// Pending callbacks are dropped. Stop is idempotent.
func (s *TickerScheduler) Stop() {
	s.cancel()
	<-s.stopped
}

// Done is closed once the ticker goroutine has exited.
func (s *TickerScheduler) Done() <-chan struct{} { return s.stopped }

var (
	_ Scheduler = (*ManualScheduler)(nil)
	_ Scheduler = (*TickerScheduler)(nil)
)
