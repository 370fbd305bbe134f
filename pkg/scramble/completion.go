package scramble

import (
	"context"
	"sync"
)

// Completion is a one-shot signal resolved when a task's last cell settles.
// Completions of abandoned tasks never resolve.
type Completion struct {
	once   sync.Once
	doneCh chan struct{}

	mu       sync.Mutex
	resolved bool
	afterFns []func()
}

func newCompletion() *Completion {
	return &Completion{doneCh: make(chan struct{})}
}

// resolve closes the signal. Repeat calls are ignored.
func (c *Completion) resolve() {
	c.once.Do(func() {
		c.mu.Lock()
		close(c.doneCh)
		c.resolved = true
		fns := c.afterFns
		c.afterFns = nil
		c.mu.Unlock()

		for _, fn := range fns {
			fn()
		}
	})
}

// Done returns a channel that is closed when the task completes.
func (c *Completion) Done() <-chan struct{} { return c.doneCh }

// Resolved reports whether the task has completed. It never blocks.
func (c *Completion) Resolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// Wait blocks until the task completes or ctx is done, returning ctx.Err()
// in the latter case.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WhenResolved registers fn to run once the task completes. If it already
// has, fn runs immediately on the caller's goroutine; otherwise it runs on the
// goroutine that renders the final frame.
func (c *Completion) WhenResolved(fn func()) {
	c.mu.Lock()
	if !c.resolved {
		c.afterFns = append(c.afterFns, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}
