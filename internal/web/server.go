// Package web serves the portfolio over HTTP and streams the scramble
// animation to browsers as Server-Sent Events.
package web

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/matzehuels/folio/pkg/content"
	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

//go:embed templates/index.html
var indexHTML string

// Config wires the server's dependencies.
type Config struct {
	Content  *content.Content
	Store    prefs.Store
	Logger   *log.Logger
	FPS      int
	Scramble []scramble.Option
}

// Server is the HTTP front end.
type Server struct {
	engine   *gin.Engine
	content  *content.Content
	store    prefs.Store
	logger   *log.Logger
	fps      int
	scramble []scramble.Option
}

// New builds the router. Gin's global mode is left to the caller.
func New(cfg Config) *Server {
	if cfg.Content == nil {
		cfg.Content = content.Default()
	}
	if cfg.Store == nil {
		cfg.Store = prefs.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	s := &Server{
		engine:   gin.New(),
		content:  cfg.Content,
		store:    cfg.Store,
		logger:   cfg.Logger,
		fps:      cfg.FPS,
		scramble: cfg.Scramble,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.engine
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))
	r.Use(gin.Recovery(), requestID(), accessLog(s.logger))

	r.GET("/", s.handleIndex)
	r.GET("/healthz", s.handleHealth)
	r.GET("/scramble", s.handleScramble)
	r.GET("/api/theme", s.handleGetTheme)
	r.PUT("/api/theme", s.handleSetTheme)
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, waiting at most shutdownTimeout for open streams.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
