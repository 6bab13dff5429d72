package texfmt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record and reports every level as disabled.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var (
	silentLogger = slog.New(discardHandler{})
	activeLogger atomic.Pointer[slog.Logger]
)

func init() {
	activeLogger.Store(silentLogger)
}

// SetLogger routes texfmt diagnostics to l. A nil l silences them again,
// which is also the initial state. It may be called at any time from any
// goroutine.
//
// Events emitted:
//   - Debug: a compressed format resolved for the legacy backend, and the
//     byte sizes of each compiled shader stage
//   - Info: the shader compiler became Ready
//   - Warn: a format has no legacy binding, or shader compilation failed
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger. The shader package logs
// through it as well.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
