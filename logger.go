package polyroot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled is false, so arguments are never
// formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	silent = slog.New(nopHandler{})
	active atomic.Pointer[slog.Logger]
)

func init() {
	active.Store(silent)
}

// SetLogger routes diagnostics from geom and the tooling packages to l.
// The solvers never log. A nil l restores the silent default.
//
// Scenes log added shapes at Debug and rejected options at Warn; accuracy
// sweeps log batches at Debug and count mismatches at Warn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
