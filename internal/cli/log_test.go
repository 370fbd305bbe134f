package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	ferrors "github.com/matzehuels/folio/pkg/errors"
)

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Connected to Redis")

	// "HH:MM:SS.ms INFO Connected to Redis (12ms)"
	re := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} INFO Connected to Redis \(\d+(\.\d+)?[µnm]?s\)\n$`)
	if !re.MatchString(buf.String()) {
		t.Errorf("progress line = %q", buf.String())
	}
}

func TestVerboseLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "DEBU shown") {
		t.Errorf("debug line missing after SetLogLevel: %q", buf.String())
	}
}

func TestPreRunInstallsLogger(t *testing.T) {
	isolate(t)
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetContext(context.Background())

	if err := root.PersistentPreRunE(root, nil); err != nil {
		t.Fatal(err)
	}
	if got := loggerFromContext(root.Context()); got != c.Logger {
		t.Error("pre-run did not attach the CLI logger to the command context")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to log.Default()")
	}
}

func TestOpenStoreLogsBackend(t *testing.T) {
	dir := isolate(t)
	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	ctx := withLogger(context.Background(), c.Logger)

	store, err := c.openStore(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	want := filepath.Join(dir, "folio", "prefs.json")
	if !strings.Contains(buf.String(), "using file store") || !strings.Contains(buf.String(), want) {
		t.Errorf("log = %q, want the file store path %s", buf.String(), want)
	}
}

func TestTUILogger(t *testing.T) {
	t.Run("discard", func(t *testing.T) {
		logger, closeLog, err := tuiLogger("", log.InfoLevel)
		if err != nil {
			t.Fatal(err)
		}
		logger.Info("nowhere")
		if err := closeLog(); err != nil {
			t.Error(err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "folio.log")
		for _, msg := range []string{"first", "second"} {
			logger, closeLog, err := tuiLogger(path, log.InfoLevel)
			if err != nil {
				t.Fatal(err)
			}
			logger.Info("starting", "run", msg)
			if err := closeLog(); err != nil {
				t.Fatal(err)
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		out := string(data)
		if !strings.Contains(out, "run=first") || !strings.Contains(out, "run=second") {
			t.Errorf("log file does not append across runs:\n%s", out)
		}
	})

	t.Run("unwritable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "folio.log")
		if _, _, err := tuiLogger(path, log.InfoLevel); !ferrors.Is(err, ferrors.ErrCodeInvalidConfig) {
			t.Errorf("error = %v, want INVALID_CONFIG", err)
		}
	})
}
