package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))

	h.OnTaskStart(1, 5)
	h.OnTaskAbandoned(1, 3)
	h.OnTaskComplete(2, 40, 650*time.Millisecond)
	h.OnLoad(context.Background(), "file", "theme", true, nil)
	h.OnSave(context.Background(), "redis", "theme", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{
		"scramble start",
		"scramble abandoned",
		"scramble settled",
		"prefs load",
		"prefs save failed",
		"connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksInstall(t *testing.T) {
	var buf bytes.Buffer
	restore := newLogHooks(newLogger(&buf, log.DebugLevel)).install()

	surface := scramble.NewBufferSurface("")
	sched := scramble.NewManualScheduler()
	scramble.New(surface, sched, scramble.WithSeed(1)).SetText("ok")
	sched.Run(100)

	if err := prefs.SaveTheme(context.Background(), prefs.NewMemoryStore(), prefs.Light); err != nil {
		t.Fatal(err)
	}

	restore()
	if _, ok := observability.Animation().(observability.NoopAnimationHooks); !ok {
		t.Error("restore did not reset animation hooks")
	}

	out := buf.String()
	for _, want := range []string{"scramble start", "scramble settled", "prefs save"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
