package api

// Logger is the interface used by the client for logging HTTP requests,
// retries, and errors. Implement it to integrate with your logging library.
type Logger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a Logger that silently discards all log messages.
// It is the default when logging is not enabled.
type NoopLogger struct{}

func (NoopLogger) Errorf(_ string, _ ...any) {}
func (NoopLogger) Warnf(_ string, _ ...any)  {}
func (NoopLogger) Debugf(_ string, _ ...any) {}
