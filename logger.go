// Package flaglog defines a synchronous, flag-filtered logging facility for Go applications.
//
// This package provides the vocabulary shared by every part of the library:
// - Flags: independent severity/category bits combined with bitwise OR
// - A fixed tag and color table used to render each flag
// - Config: the complete, copyable configuration of one logger
// - Callback and Verdict: the user callback sink and its gating contract
// - Logger: the interface implemented by the engine in pkg/adapter
//
// A record is emitted only when its flag is enabled in the active flag set. There is
// no level ordering: enabling Error does not imply Warn. Each emitted record is rendered
// once and handed, in order, to the callback, the screen and the daily log file.
//
// Basic usage:
//
//	log, err := adapter.New("app", flaglog.FlagsAll, true)
//	if err != nil {
//		panic(err)
//	}
//	defer log.Destroy()
//
//	log.Infof("value=%d", 42)
//	log.Warn("disk almost full")
//
// The engine performs every write on the calling goroutine and returns only after all
// sinks are done. Nothing is queued or buffered for a later retry.
package flaglog

// Logger defines the interface for logging operations.
type Logger interface {
	// Emit logs msg under flag. The message is never interpreted as a template.
	Emit(flag Flag, newline bool, msg string)
	// Emitf logs a printf-style formatted message under flag.
	Emitf(flag Flag, newline bool, format string, args ...any)

	// Log methods for the tagged flags, always newline-terminated.
	Note(msg string)
	Info(msg string)
	Warn(msg string)
	Debug(msg string)
	Trace(msg string)
	Error(msg string)
	Fatal(msg string)

	FormattedLogger

	Methods
}

// Methods defines the configuration side of a Logger.
type Methods interface {
	// Config returns a snapshot copy of the current configuration
	Config() Config
	// SetConfig validates and replaces the configuration
	SetConfig(cfg Config) error
	// Enable turns on every bit of flag
	Enable(flag Flag)
	// Disable turns off every bit of flag
	Disable(flag Flag)
	// Sync flushes buffered file output
	Sync() error
}

// FormattedLogger defines the interface for logging formatted messages.
type FormattedLogger interface {
	// Notef logs a message under the Note flag
	Notef(format string, args ...any)
	// Infof logs a message under the Info flag
	Infof(format string, args ...any)
	// Warnf logs a message under the Warn flag
	Warnf(format string, args ...any)
	// Debugf logs a message under the Debug flag
	Debugf(format string, args ...any)
	// Tracef logs a message under the Trace flag
	Tracef(format string, args ...any)
	// Errorf logs a message under the Error flag
	Errorf(format string, args ...any)
	// Fatalf logs a message under the Fatal flag
	Fatalf(format string, args ...any)
}
