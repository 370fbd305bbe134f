package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/folio/pkg/observability"
)

// logHooks reports animation and preference events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

// install registers h globally and returns a function restoring the no-op
// hooks.
func (h *logHooks) install() func() {
	observability.SetAnimationHooks(h)
	observability.SetPrefsHooks(h)
	return observability.Reset
}

func (h *logHooks) OnTaskStart(gen uint64, cells int) {
	h.logger.Debug("scramble start", "gen", gen, "cells", cells)
}

func (h *logHooks) OnTaskComplete(gen uint64, frames int, d time.Duration) {
	h.logger.Debug("scramble settled", "gen", gen, "frames", frames, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnTaskAbandoned(gen uint64, frame int) {
	h.logger.Debug("scramble abandoned", "gen", gen, "frame", frame)
}

func (h *logHooks) OnLoad(_ context.Context, backend, key string, hit bool, err error) {
	if err != nil {
		h.logger.Warn("prefs load failed", "backend", backend, "key", key, "err", err)
		return
	}
	h.logger.Debug("prefs load", "backend", backend, "key", key, "hit", hit)
}

func (h *logHooks) OnSave(_ context.Context, backend, key string, err error) {
	if err != nil {
		h.logger.Warn("prefs save failed", "backend", backend, "key", key, "err", err)
		return
	}
	h.logger.Debug("prefs save", "backend", backend, "key", key)
}

var (
	_ observability.AnimationHooks = (*logHooks)(nil)
	_ observability.PrefsHooks     = (*logHooks)(nil)
)
