package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/scramble"
)

// scrambleOpts holds the command-line flags for the scramble command.
type scrambleOpts struct {
	from     string  // text shown before the transition
	fps      int     // frame rate (0 = FOLIO_FPS)
	seed     int64   // noise seed (0 = random)
	alphabet string  // noise glyphs
	reroll   float64 // per-frame chance a scrambling glyph changes
	maxStart int     // exclusive upper bound of a cell's start frame
	maxDwell int     // exclusive upper bound of a cell's scramble length
	html     bool    // print every frame as an HTML line instead of redrawing
}

// scrambleCommand animates a single transition on the terminal.
func (c *CLI) scrambleCommand() *cobra.Command {
	defaults := scramble.DefaultOptions()
	opts := scrambleOpts{
		alphabet: string(defaults.Alphabet),
		reroll:   defaults.RerollChance,
		maxStart: defaults.MaxStart,
		maxDwell: defaults.MaxDwell,
	}

	cmd := &cobra.Command{
		Use:   "scramble <text>",
		Short: "Scramble text into place on the terminal",
		Long: `Scramble animates a transition from --from to <text>. Each character
waits, flickers through noise glyphs, then settles on its target.

With --html every frame is printed on its own line as HTML, the same markup
"folio serve" streams to browsers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScramble(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "starting text")
	f.IntVar(&opts.fps, "fps", 0, "frame rate (default FOLIO_FPS or 60)")
	f.Int64Var(&opts.seed, "seed", 0, "seed the noise for reproducible output")
	f.StringVar(&opts.alphabet, "alphabet", opts.alphabet, "noise glyphs")
	f.Float64Var(&opts.reroll, "reroll", opts.reroll, "chance a noise glyph changes each frame")
	f.IntVar(&opts.maxStart, "max-start", opts.maxStart, "latest frame a character may start scrambling")
	f.IntVar(&opts.maxDwell, "max-dwell", opts.maxDwell, "longest a character may scramble, in frames")
	f.BoolVar(&opts.html, "html", false, "print frames as HTML lines")

	return cmd
}

func (c *CLI) runScramble(cmd *cobra.Command, text string, opts scrambleOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	for _, v := range []string{text, opts.from} {
		if err := ferrors.ValidateText(v); err != nil {
			return err
		}
	}
	if opts.alphabet == "" {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "alphabet must not be empty")
	}
	if opts.reroll < 0 || opts.reroll > 1 {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "reroll must be between 0 and 1")
	}
	if opts.maxStart < 0 || opts.maxDwell < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidInput, "max-start and max-dwell must not be negative")
	}
	fps, err := c.resolveFPS(opts.fps)
	if err != nil {
		return err
	}

	animOpts := []scramble.Option{
		scramble.WithAlphabet(opts.alphabet),
		scramble.WithRerollChance(opts.reroll),
		scramble.WithMaxStart(opts.maxStart),
		scramble.WithMaxDwell(opts.maxDwell),
	}
	if opts.seed != 0 {
		animOpts = append(animOpts, scramble.WithSeed(opts.seed))
	}

	defer newLogHooks(logger).install()()

	out := cmd.OutOrStdout()
	surface := terminalSurface(out, opts.from, opts.html)

	sched := scramble.NewTickerScheduler(ctx, fps)
	defer sched.Stop()

	prog := newProgress(logger)
	if err := scramble.New(surface, sched, animOpts...).SetText(text).Wait(ctx); err != nil {
		fmt.Fprintln(out)
		return err
	}
	if !opts.html {
		fmt.Fprintln(out)
	}
	logger.Debug("frames rendered", "count", surface.Frames())
	prog.done("Settled")
	return nil
}

// terminalSurface draws frames on w: one HTML line per frame, or a styled
// line redrawn in place.
func terminalSurface(w io.Writer, from string, html bool) *scramble.BufferSurface {
	if html {
		return scramble.NewBufferSurface(from).
			WithMarkup(scramble.HTML).
			OnRender(func(rendered string) { fmt.Fprintln(w, rendered) })
	}
	markup := scramble.Styled(lipgloss.NewStyle(), StyleDim)
	return scramble.NewBufferSurface(from).
		WithMarkup(markup).
		OnRender(func(rendered string) { fmt.Fprint(w, "\r\x1b[K"+rendered) })
}

