// Package cli implements the folio command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/config"
	"github.com/matzehuels/folio/pkg/buildinfo"
	"github.com/matzehuels/folio/pkg/content"
	"github.com/matzehuels/folio/pkg/prefs"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "folio"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// stderr receives log output and spinner frames.
	stderr io.Writer
	cfg    config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand opens the portfolio.
func (c *CLI) RootCommand() *cobra.Command {
	opts := defaultRunOpts()

	root := &cobra.Command{
		Use:   appName,
		Short: "folio is a terminal portfolio with a text-scramble hero",
		Long: `folio renders a personal portfolio in the terminal. The greeting settles
out of scrambled glyphs, sections reveal as you scroll, and a command palette
(ctrl+k) jumps anywhere. The same animation can be streamed to browsers with
"folio serve".`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.bind(root)

	root.AddCommand(c.runCommand())
	root.AddCommand(c.scrambleCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.prefsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// resolveFPS returns the flag value when set, else the configured rate.
func (c *CLI) resolveFPS(flag int) (int, error) {
	if flag == 0 {
		return c.cfg.FPS, nil
	}
	if err := config.ValidateFPS(flag); err != nil {
		return 0, err
	}
	return flag, nil
}

// loadContent reads portfolio content from path, falling back to
// FOLIO_CONTENT and then to the embedded default.
func (c *CLI) loadContent(ctx context.Context, path string) (*content.Content, error) {
	if path == "" {
		path = c.cfg.ContentPath
	}
	cont, err := content.Load(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		loggerFromContext(ctx).Debug("loaded content", "path", path)
	}
	return cont, nil
}

// openStore picks the preference backend: memory when persistence is off,
// Redis when FOLIO_REDIS_URL is set, else the JSON file.
func (c *CLI) openStore(ctx context.Context, noPersist bool) (prefs.Store, error) {
	logger := loggerFromContext(ctx)

	switch {
	case noPersist:
		return prefs.NewMemoryStore(), nil
	case c.cfg.RedisURL != "":
		spinner := newSpinnerWithContext(ctx, c.stderr, "Connecting to Redis...")
		spinner.Start()
		prog := newProgress(logger)
		store, err := prefs.NewRedisStore(ctx, c.cfg.RedisURL, c.cfg.RedisTimeout)
		if err != nil {
			spinner.StopWithError("Redis unavailable")
			return nil, err
		}
		spinner.Stop()
		prog.done("Connected to Redis")
		return store, nil
	default:
		store, err := prefs.NewFileStore("")
		if err != nil {
			return nil, err
		}
		logger.Debug("using file store", "path", store.Path())
		return store, nil
	}
}
