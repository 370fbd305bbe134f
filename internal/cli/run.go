package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/tui"
	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	content   string // TOML content file (default: FOLIO_CONTENT or embedded)
	theme     string // theme override: "dark" or "light"
	noPersist bool   // keep preferences in memory only
	fps       int    // hero frame rate (0 = FOLIO_FPS)
	logFile   string // file receiving logs while the TUI owns the terminal
	seed      int64  // noise seed for reproducible animations (0 = random)
}

func defaultRunOpts() *runOpts { return &runOpts{} }

func (o *runOpts) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.content, "content", "", "portfolio content TOML file")
	f.StringVar(&o.theme, "theme", "", "colour theme for this session: dark or light")
	f.BoolVar(&o.noPersist, "no-persist", false, "do not read or write stored preferences")
	f.IntVar(&o.fps, "fps", 0, "hero animation frame rate (default FOLIO_FPS or 60)")
	f.StringVar(&o.logFile, "log-file", "", "write logs to this file")
	f.Int64Var(&o.seed, "seed", 0, "seed the scramble noise")
}

// runCommand creates the run command. It mirrors the root command so the
// portfolio can be opened explicitly.
func (c *CLI) runCommand() *cobra.Command {
	opts := defaultRunOpts()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func (c *CLI) runTUI(ctx context.Context, opts *runOpts) error {
	fps, err := c.resolveFPS(opts.fps)
	if err != nil {
		return err
	}

	theme := c.cfg.Theme
	if opts.theme != "" {
		if theme, err = prefs.ParseTheme(opts.theme); err != nil {
			return err
		}
	}

	logger, closeLog, err := tuiLogger(opts.logFile, c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = withLogger(ctx, logger)
	defer newLogHooks(logger).install()()

	cont, err := c.loadContent(ctx, opts.content)
	if err != nil {
		return err
	}

	store, err := c.openStore(ctx, opts.noPersist)
	if err != nil {
		return err
	}
	defer store.Close()

	var scrambleOpts []scramble.Option
	if opts.seed != 0 {
		scrambleOpts = append(scrambleOpts, scramble.WithSeed(opts.seed))
	}

	model := tui.New(tui.Config{
		Context:  ctx,
		Content:  cont,
		Store:    store,
		Theme:    theme,
		Logger:   logger,
		FPS:      fps,
		Scramble: scrambleOpts,
	})

	logger.Info("starting", "owner", cont.Owner.Name, "theme", model.Theme(), "fps", fps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	logger.Info("bye")
	return nil
}

// tuiLogger returns the logger used while the program owns stdout and
// stderr: appending to path when set, discarding otherwise.
func tuiLogger(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return newLogger(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "open log file")
	}
	return newLogger(f, level), f.Close, nil
}
