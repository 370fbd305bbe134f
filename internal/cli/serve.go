package cli

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/internal/web"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address (default FOLIO_ADDR)
	content   string // TOML content file
	fps       int    // stream frame rate (0 = FOLIO_FPS)
	noPersist bool   // keep the theme in memory
}

// serveCommand streams the scramble animation to browsers over SSE.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page and stream the scramble over HTTP",
		Long: `Serve starts an HTTP server. GET / renders the page, GET /scramble?text=...
streams one Server-Sent Event per animation frame, and GET /healthz reports
liveness. The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			fps, err := c.resolveFPS(opts.fps)
			if err != nil {
				return err
			}
			addr := opts.addr
			if addr == "" {
				addr = c.cfg.Addr
			}

			cont, err := c.loadContent(ctx, opts.content)
			if err != nil {
				return err
			}
			store, err := c.openStore(ctx, opts.noPersist)
			if err != nil {
				return err
			}
			defer store.Close()

			if logger.GetLevel() > log.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}
			defer newLogHooks(logger).install()()

			srv := web.New(web.Config{
				Content: cont,
				Store:   store,
				Logger:  logger,
				FPS:     fps,
			})
			out := cmd.OutOrStdout()
			printInfo(out, "Serving %s on %s", cont.Owner.Name, StyleLink.Render("http://"+displayAddr(addr)))
			printDetail(out, "Press Ctrl+C to stop")
			return srv.ListenAndServe(ctx, addr, c.cfg.ShutdownTimeout)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", "", "listen address (default FOLIO_ADDR or :8080)")
	f.StringVar(&opts.content, "content", "", "portfolio content TOML file")
	f.IntVar(&opts.fps, "fps", 0, "stream frame rate (default FOLIO_FPS or 60)")
	f.BoolVar(&opts.noPersist, "no-persist", false, "do not read or write stored preferences")

	return cmd
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
