package paging

import (
	"context"
	"log/slog"
	"os"
)

// WithLogger sets the sink for diagnostic messages.
// Messages are emitted at [slog.LevelDebug], and only while
// debugging is enabled (see [MMU.SetDebug]).
// The default sink writes text to standard error.
func WithLogger(logger *slog.Logger) Option {
	return func(m *MMU) {
		if logger != nil {
			m.log = logger
		}
	}
}

// WithDebug sets whether diagnostic messages are emitted initially.
func WithDebug(enabled bool) Option {
	return func(m *MMU) { m.debug = enabled }
}

// SetDebug enables diagnostic messages.
func (m *MMU) SetDebug() { m.debug = true }

// ResetDebug disables diagnostic messages.
func (m *MMU) ResetDebug() { m.debug = false }

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func (m *MMU) trace(message string, attrs ...slog.Attr) {
	if !m.debug {
		return
	}
	m.log.LogAttrs(context.Background(), slog.LevelDebug, message, attrs...)
}
