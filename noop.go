package flaglog

// NoopLogger is a logger that does nothing.
type NoopLogger struct {
	config Config
}

// NewNoop creates a new NoopLogger.
func NewNoop() Logger {
	return &NoopLogger{
		config: Config{Flags: Always},
	}
}

// Ensure NoopLogger implements Logger interface.
var _ Logger = (*NoopLogger)(nil)

// Emit discards the message.
func (*NoopLogger) Emit(_ Flag, _ bool, _ string) {}

// Emitf discards the message.
func (*NoopLogger) Emitf(_ Flag, _ bool, _ string, _ ...any) {}

// Basic logging methods.

// Note logs a message under the Note flag.
func (*NoopLogger) Note(_ string) {}

// Info logs a message under the Info flag.
func (*NoopLogger) Info(_ string) {}

// Warn logs a message under the Warn flag.
func (*NoopLogger) Warn(_ string) {}

// Debug logs a message under the Debug flag.
func (*NoopLogger) Debug(_ string) {}

// Trace logs a message under the Trace flag.
func (*NoopLogger) Trace(_ string) {}

// Error logs a message under the Error flag.
func (*NoopLogger) Error(_ string) {}

// Fatal logs a message under the Fatal flag.
func (*NoopLogger) Fatal(_ string) {}

// Formatted logging methods.

// Notef logs a formatted message under the Note flag.
func (*NoopLogger) Notef(_ string, _ ...any) {}

// Infof logs a formatted message under the Info flag.
func (*NoopLogger) Infof(_ string, _ ...any) {}

// Warnf logs a formatted message under the Warn flag.
func (*NoopLogger) Warnf(_ string, _ ...any) {}

// Debugf logs a formatted message under the Debug flag.
func (*NoopLogger) Debugf(_ string, _ ...any) {}

// Tracef logs a formatted message under the Trace flag.
func (*NoopLogger) Tracef(_ string, _ ...any) {}

// Errorf logs a formatted message under the Error flag.
func (*NoopLogger) Errorf(_ string, _ ...any) {}

// Fatalf logs a formatted message under the Fatal flag.
func (*NoopLogger) Fatalf(_ string, _ ...any) {}

// Configuration.

// Config returns the stored configuration.
func (l *NoopLogger) Config() Config { return l.config }

// SetConfig stores cfg without validating it.
func (l *NoopLogger) SetConfig(cfg Config) error {
	l.config = cfg

	return nil
}

// Enable sets the bits of flag.
func (l *NoopLogger) Enable(flag Flag) { l.config.Flags |= flag }

// Disable clears the bits of flag.
func (l *NoopLogger) Disable(flag Flag) { l.config.Flags &^= flag }

// Sync is a no-op operation.
func (*NoopLogger) Sync() error { return nil }
