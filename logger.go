package blendfx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false at all levels, so the
// Compositor's debug attributes are never built.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// silent is installed until SetLogger is called, and again by SetLogger(nil).
var silent = slog.New(nopHandler{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes blendfx diagnostics to l; nil silences them again.
// It may be called while a Compositor is running.
//
// Records carry a "blendfx:" message prefix and these keys: formula, pixels,
// spans, workers (Debug, one per Compositor pass) and err (Warn, when a pass
// is abandoned because its context ended).
//
// To see per-pass span counts while tuning WithSpanSize:
//
//	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
//	blendfx.SetLogger(slog.New(h).With("component", "compositor"))
//	defer blendfx.SetLogger(nil)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger blendfx currently writes to.
func Logger() *slog.Logger {
	return current.Load()
}
