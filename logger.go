package glass

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// attribute formatting never runs while logging is off.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

// SetLogger routes the debug output of glass, text and atlas to l.
// A nil l switches logging off again, which is also the initial state.
// It may be called at any time from any goroutine.
//
// glass only logs at [slog.LevelDebug]: texture creation and resize,
// registry releases, font binding and atlas rendering. Failures are
// reported through returned errors.
//
//	glass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the logger installed by SetLogger, or a disabled one.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}
