package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Animation hooks
	a := NoopAnimationHooks{}
	a.OnTaskStart(1, 26)
	a.OnTaskComplete(1, 79, time.Second)
	a.OnTaskAbandoned(2, 12)

	// Prefs hooks
	p := NoopPrefsHooks{}
	p.OnLoad(ctx, "file", "theme", true, nil)
	p.OnSave(ctx, "redis", "theme", errors.New("connection refused"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Animation() should return NoopAnimationHooks by default")
	}
	if _, ok := Prefs().(NoopPrefsHooks); !ok {
		t.Error("Prefs() should return NoopPrefsHooks by default")
	}

	// Set custom hooks
	customAnimation := &testAnimationHooks{}
	SetAnimationHooks(customAnimation)
	if Animation() != customAnimation {
		t.Error("SetAnimationHooks should set custom hooks")
	}

	customPrefs := &testPrefsHooks{}
	SetPrefsHooks(customPrefs)
	if Prefs() != customPrefs {
		t.Error("SetPrefsHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Reset() should restore NoopAnimationHooks")
	}
	if _, ok := Prefs().(NoopPrefsHooks); !ok {
		t.Error("Reset() should restore NoopPrefsHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnimationHooks{}
	SetAnimationHooks(custom)

	// Setting nil should be ignored
	SetAnimationHooks(nil)
	SetPrefsHooks(nil)

	if Animation() != custom {
		t.Error("SetAnimationHooks(nil) should be ignored")
	}
	if _, ok := Prefs().(NoopPrefsHooks); !ok {
		t.Error("SetPrefsHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testAnimationHooks struct{ NoopAnimationHooks }
type testPrefsHooks struct{ NoopPrefsHooks }
