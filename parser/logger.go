package parser

import (
	"log/slog"
)

// Logger receives the parser's structured log output: version detection,
// external document loads and cache hits, lazily loaded reference targets.
//
// attrs are alternating key-value pairs, the log/slog convention:
//
//	logger.Debug("loading external document", "location", "common.yaml")
//
// Wrap a *slog.Logger with [NewSlogAdapter]; adapters for other libraries
// need only forward the five methods.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	// With returns a Logger that adds attrs to every entry.
	With(attrs ...any) Logger
}

// NopLogger discards everything. It is the default.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any)  {}
func (NopLogger) Info(string, ...any)   {}
func (NopLogger) Warn(string, ...any)   {}
func (NopLogger) Error(string, ...any)  {}
func (n NopLogger) With(...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter implements Logger on top of a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger; nil means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
