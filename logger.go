package lutmap

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by lutmap and its sub-packages. By default
// nothing is logged. Passing nil restores the silent default. Safe for
// concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: timings of builds, cache and cube I/O
//   - [slog.LevelInfo]: batch output files saved
//   - [slog.LevelWarn]: a batch job failed or a corrupt cache is being rebuilt
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
