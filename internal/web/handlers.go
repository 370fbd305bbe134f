package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matzehuels/folio/pkg/content"
	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/prefs"
	"github.com/matzehuels/folio/pkg/scramble"
)

// frameBuffer holds a whole animation's frames so the ticker never blocks
// on a slow client.
const frameBuffer = 128

type indexData struct {
	Title    string
	Greeting string
	Tagline  string
	Theme    prefs.Theme
	Projects []content.Project
	Links    content.Links
}

func (s *Server) handleIndex(c *gin.Context) {
	theme, err := prefs.LoadTheme(c.Request.Context(), s.store)
	if err != nil {
		s.logger.Warn("load theme", "err", err)
	}
	c.HTML(http.StatusOK, "index", indexData{
		Title:    s.content.Owner.Name,
		Greeting: s.content.Hero.Greeting,
		Tagline:  s.content.Hero.Tagline,
		Theme:    theme,
		Projects: s.content.Projects,
		Links:    s.content.Links,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// handleScramble streams one transition from ?from= to ?text= as SSE. Each
// "frame" event carries the frame as HTML; a final "done" event carries the
// settled text.
func (s *Server) handleScramble(c *gin.Context) {
	text := c.Query("text")
	from := c.Query("from")
	for _, v := range []string{text, from} {
		if err := ferrors.ValidateText(v); err != nil {
			s.abort(c, err)
			return
		}
	}

	ctx := c.Request.Context()
	sched := scramble.NewTickerScheduler(ctx, s.fps)
	defer sched.Stop()

	frames := make(chan string, frameBuffer)
	surface := scramble.NewBufferSurface(from).
		WithMarkup(scramble.HTML).
		OnRender(func(rendered string) {
			select {
			case frames <- rendered:
			case <-ctx.Done():
			}
		})

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	done := scramble.New(surface, sched, s.scramble...).SetText(text)
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-frames:
			s.event(c, "frame", f)
		case <-done.Done():
			// Frames are queued before the completion resolves.
			for len(frames) > 0 {
				s.event(c, "frame", <-frames)
			}
			s.event(c, "done", text)
			return
		}
	}
}

func (s *Server) event(c *gin.Context, name, data string) {
	c.SSEvent(name, data)
	c.Writer.Flush()
}

type themeBody struct {
	Theme string `json:"theme"`
}

func (s *Server) handleGetTheme(c *gin.Context) {
	theme, err := prefs.LoadTheme(c.Request.Context(), s.store)
	if err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, themeBody{Theme: string(theme)})
}

func (s *Server) handleSetTheme(c *gin.Context) {
	var body themeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.abort(c, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode body"))
		return
	}
	theme, err := prefs.ParseTheme(body.Theme)
	if err != nil {
		s.abort(c, err)
		return
	}
	if err := prefs.SaveTheme(c.Request.Context(), s.store, theme); err != nil {
		s.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, themeBody{Theme: string(theme)})
}

// abort writes err as a JSON body with a status derived from its code.
func (s *Server) abort(c *gin.Context, err error) {
	code := ferrors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": ferrors.UserMessage(err),
		"code":  string(code),
	})
}

func statusFor(code ferrors.Code) int {
	switch code {
	case ferrors.ErrCodeInvalidInput, ferrors.ErrCodeInvalidTheme, ferrors.ErrCodeInvalidKey:
		return http.StatusBadRequest
	case ferrors.ErrCodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
