// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries in this module emit lifecycle events through the hooks registered
// here, so they stay free of any particular logging or metrics backend. The
// defaults are no-ops; applications register real implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnimationHooks(&myAnimationHooks{})
//	    observability.SetPrefsHooks(&myPrefsHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Animation().OnTaskStart(gen, cells)
//	// ... frames ...
//	observability.Animation().OnTaskComplete(gen, frames, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from scramble animators. Events are emitted
// while the animator holds its lock, so implementations must be quick and must
// not call back into the animator.
type AnimationHooks interface {
	// OnTaskStart records a new transition with the given number of cells.
	OnTaskStart(gen uint64, cells int)

	// OnTaskComplete records a transition that settled every cell.
	OnTaskComplete(gen uint64, frames int, duration time.Duration)

	// OnTaskAbandoned records a transition superseded at the given frame.
	OnTaskAbandoned(gen uint64, frame int)
}

// =============================================================================
// Prefs Hooks
// =============================================================================

// PrefsHooks receives events from preference stores.
type PrefsHooks interface {
	// OnLoad records a preference read. hit is false when the key was unset.
	OnLoad(ctx context.Context, backend, key string, hit bool, err error)

	// OnSave records a preference write.
	OnSave(ctx context.Context, backend, key string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnTaskStart(uint64, int)                   {}
func (NoopAnimationHooks) OnTaskComplete(uint64, int, time.Duration) {}
func (NoopAnimationHooks) OnTaskAbandoned(uint64, int)               {}

// NoopPrefsHooks is a no-op implementation of PrefsHooks.
type NoopPrefsHooks struct{}

func (NoopPrefsHooks) OnLoad(context.Context, string, string, bool, error) {}
func (NoopPrefsHooks) OnSave(context.Context, string, string, error)       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	animationHooks AnimationHooks = NoopAnimationHooks{}
	prefsHooks     PrefsHooks     = NoopPrefsHooks{}
	hooksMu        sync.RWMutex
)

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before any animator runs.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// SetPrefsHooks registers custom preference store hooks.
func SetPrefsHooks(h PrefsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		prefsHooks = h
	}
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Prefs returns the registered preference store hooks.
func Prefs() PrefsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return prefsHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	animationHooks = NoopAnimationHooks{}
	prefsHooks = NoopPrefsHooks{}
}
