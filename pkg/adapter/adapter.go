// Package adapter provides the concrete implementation of the flaglog.Logger interface.
//
// The Adapter owns one logger configuration, the optional guard serializing access to
// it, and the screen and file sinks. Every emit call filters, renders and writes on the
// calling goroutine:
//
//	caller -> guard -> filter -> clock -> render -> callback -> screen -> file -> guard
//
// Rendering uses pooled fixed-capacity buffers unless the configuration asks for heap
// buffers, in which case messages are unbounded.
package adapter

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/clock"
	"github.com/hyp3rd/flaglog/internal/output"
	"github.com/hyp3rd/flaglog/internal/utils"
)

// ErrDestroyed is returned by operations on an adapter after Destroy.
var ErrDestroyed = ewrap.New("logger has been destroyed")

// Option customizes an Adapter at construction.
type Option func(*Adapter)

// WithClock replaces the wall clock used to stamp records and pick log file dates.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// WithThreadID replaces the source of the thread id rendered when TraceThreadID is set.
func WithThreadID(threadID func() uint64) Option {
	return func(a *Adapter) {
		if threadID != nil {
			a.threadID = threadID
		}
	}
}

// WithDiagnostics sets where the adapter reports its own failures. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(a *Adapter) {
		if w != nil {
			a.diag = w
		}
	}
}

// Adapter implements the flaglog.Logger interface.
type Adapter struct {
	guard  guard
	config flaglog.Config

	screen *output.ConsoleWriter
	file   *output.FileWriter

	now      func() time.Time
	threadID func() uint64
	diag     io.Writer

	linePool *sync.Pool
}

// Ensure Adapter implements the Logger interface.
var _ flaglog.Logger = (*Adapter)(nil)

// New creates an adapter with the default configuration: screen output with colored
// tags and time-only dates, the file sink off, and the given flags enabled. name is the
// base name of the log file. When threadSafe is false the adapter takes no locks and
// must only be used from one goroutine at a time.
func New(name string, flags flaglog.Flag, threadSafe bool, opts ...Option) (*Adapter, error) {
	return NewAdapter(flaglog.DefaultConfig(name, flags), threadSafe, opts...)
}

// NewAdapter creates an adapter with the given configuration.
func NewAdapter(config flaglog.Config, threadSafe bool, opts ...Option) (*Adapter, error) {
	err := config.Validate()
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid logger config")
	}

	adapter := &Adapter{
		now:      clock.Now,
		threadID: clock.GoroutineID,
		diag:     os.Stderr,
		linePool: newLinePool(),
	}

	for _, opt := range opts {
		opt(adapter)
	}

	err = adapter.apply(config)
	if err != nil {
		return nil, err
	}

	adapter.guard.init(threadSafe)

	return adapter, nil
}

// Destroy closes the log file, clears the callback and destroys the guard. Records
// emitted afterwards are dropped. Destroying twice returns nil.
func (a *Adapter) Destroy() error {
	if !a.guard.active() || !a.guard.lock() {
		return nil
	}
	defer a.guard.unlock()

	var err error

	if a.file != nil {
		err = a.file.Close()
		a.file = nil
	}

	if a.screen != nil {
		syncErr := a.screen.Sync()
		if err == nil {
			err = syncErr
		}
	}

	a.config.Callback = nil
	a.config.CallbackData = nil
	a.guard.destroy()

	if err != nil {
		return ewrap.Wrap(err, "destroying logger")
	}

	return nil
}

// Emit logs msg under flag, followed by a newline when newline is set. msg is
// written as is and never treated as a format.
func (a *Adapter) Emit(flag flaglog.Flag, newline bool, msg string) {
	a.emit(flag, newline, "%s", msg)
}

// Emitf logs a formatted message under flag, followed by a newline when newline is set.
func (a *Adapter) Emitf(flag flaglog.Flag, newline bool, format string, args ...any) {
	a.emit(flag, newline, format, args...)
}

// Note logs a message under the Note flag.
func (a *Adapter) Note(msg string) {
	a.emit(flaglog.Note, true, "%s", msg)
}

// Info logs a message under the Info flag.
func (a *Adapter) Info(msg string) {
	a.emit(flaglog.Info, true, "%s", msg)
}

// Warn logs a message under the Warn flag.
func (a *Adapter) Warn(msg string) {
	a.emit(flaglog.Warn, true, "%s", msg)
}

// Debug logs a message under the Debug flag.
func (a *Adapter) Debug(msg string) {
	a.emit(flaglog.Debug, true, "%s", msg)
}

// Trace logs a message under the Trace flag.
func (a *Adapter) Trace(msg string) {
	a.emit(flaglog.Trace, true, "%s", msg)
}

// Error logs a message under the Error flag.
func (a *Adapter) Error(msg string) {
	a.emit(flaglog.Error, true, "%s", msg)
}

// Fatal logs a message under the Fatal flag. It does not terminate the process.
func (a *Adapter) Fatal(msg string) {
	a.emit(flaglog.Fatal, true, "%s", msg)
}

// Notef logs a formatted message under the Note flag.
func (a *Adapter) Notef(format string, args ...any) {
	a.emit(flaglog.Note, true, format, args...)
}

// Infof logs a formatted message under the Info flag.
func (a *Adapter) Infof(format string, args ...any) {
	a.emit(flaglog.Info, true, format, args...)
}

// Warnf logs a formatted message under the Warn flag.
func (a *Adapter) Warnf(format string, args ...any) {
	a.emit(flaglog.Warn, true, format, args...)
}

// Debugf logs a formatted message under the Debug flag.
func (a *Adapter) Debugf(format string, args ...any) {
	a.emit(flaglog.Debug, true, format, args...)
}

// Tracef logs a formatted message under the Trace flag.
func (a *Adapter) Tracef(format string, args ...any) {
	a.emit(flaglog.Trace, true, format, args...)
}

// Errorf logs a formatted message under the Error flag.
func (a *Adapter) Errorf(format string, args ...any) {
	a.emit(flaglog.Error, true, format, args...)
}

// Fatalf logs a formatted message under the Fatal flag. It does not terminate the process.
func (a *Adapter) Fatalf(format string, args ...any) {
	a.emit(flaglog.Fatal, true, format, args...)
}

// Config returns a copy of the current configuration.
func (a *Adapter) Config() flaglog.Config {
	if !a.guard.active() || !a.guard.lock() {
		return a.config
	}
	defer a.guard.unlock()

	return a.config
}

// SetConfig validates config and replaces the current configuration with it. A change
// of the file directory, name or rotation mode closes the open log file.
func (a *Adapter) SetConfig(config flaglog.Config) error {
	err := config.Validate()
	if err != nil {
		return ewrap.Wrap(err, "invalid logger config")
	}

	if !a.guard.active() || !a.guard.lock() {
		return ErrDestroyed
	}
	defer a.guard.unlock()

	return a.apply(config)
}

// Enabled reports whether a record carrying flag would be emitted.
func (a *Adapter) Enabled(flag flaglog.Flag) bool {
	if !a.guard.active() || !a.guard.lock() {
		return false
	}
	defer a.guard.unlock()

	return flag.EnabledIn(a.config.Flags)
}

// Enable turns on every bit of flag. Enable(flaglog.FlagsAll) turns on every category.
func (a *Adapter) Enable(flag flaglog.Flag) {
	a.updateFlags(func(current flaglog.Flag) flaglog.Flag { return current | flag })
}

// Disable turns off every bit of flag. Disable(flaglog.FlagsAll) turns off every category.
func (a *Adapter) Disable(flag flaglog.Flag) {
	a.updateFlags(func(current flaglog.Flag) flaglog.Flag { return current &^ flag })
}

// EnableAll turns on every category.
func (a *Adapter) EnableAll() {
	a.Enable(flaglog.FlagsAll)
}

// DisableAll turns off every category. Records logged under flaglog.Always still pass.
func (a *Adapter) DisableAll() {
	a.Disable(flaglog.FlagsAll)
}

// SetCallback sets the callback sink and the data handed to it. A nil callback
// removes the sink.
func (a *Adapter) SetCallback(cb flaglog.Callback, data any) {
	if !a.guard.active() || !a.guard.lock() {
		return
	}
	defer a.guard.unlock()

	a.config.Callback = cb
	a.config.CallbackData = data
}

// FullPath returns the path of the file the file sink writes to at this moment,
// or "" when the configured name cannot name a log file.
func (a *Adapter) FullPath() string {
	if !a.guard.active() || !a.guard.lock() {
		return ""
	}
	defer a.guard.unlock()

	path, err := utils.LogFilePath(a.config.FilePath, a.config.FileName, a.now(), a.config.RotateDaily)
	if err != nil {
		return ""
	}

	return path
}

// Sync flushes the screen destination when it is buffered and writes buffered file
// records to disk.
func (a *Adapter) Sync() error {
	if !a.guard.active() || !a.guard.lock() {
		return nil
	}
	defer a.guard.unlock()

	errorGroup := ewrap.NewErrorGroup()

	if a.screen != nil {
		err := a.screen.Sync()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if a.file != nil {
		err := a.file.Sync()
		if err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return errorGroup
	}

	return nil
}

func (a *Adapter) updateFlags(update func(flaglog.Flag) flaglog.Flag) {
	if !a.guard.active() || !a.guard.lock() {
		return
	}
	defer a.guard.unlock()

	a.config.Flags = update(a.config.Flags)
}

// apply installs a validated configuration and reshapes the sinks to match it.
func (a *Adapter) apply(config flaglog.Config) error {
	a.screen = nil
	if config.Output != nil {
		a.screen = output.NewConsoleWriter(config.Output)
	}

	err := a.applyFileConfig(config)
	if err != nil {
		return err
	}

	a.config = config

	return nil
}

func (a *Adapter) applyFileConfig(config flaglog.Config) error {
	fileConfig := output.FileConfig{
		Dir:          config.FilePath,
		Name:         config.FileName,
		FileMode:     config.FileMode,
		RotateDaily:  config.RotateDaily,
		KeepOpen:     config.KeepOpen,
		Flush:        config.Flush,
		ErrorHandler: a.reportFileError,
	}

	// Without a usable name there is nothing to write to; Validate rejects
	// that combination when the file sink is enabled.
	if utils.ValidateName(config.FileName) != nil {
		if a.file != nil {
			err := a.file.Close()
			a.file = nil

			if err != nil {
				return ewrap.Wrap(err, "closing log file")
			}
		}

		return nil
	}

	if a.file == nil {
		file, err := output.NewFileWriter(fileConfig, a.now)
		if err != nil {
			return ewrap.Wrap(err, "creating file sink")
		}

		a.file = file

		return nil
	}

	err := a.file.Reconfigure(fileConfig)
	if err != nil {
		return ewrap.Wrap(err, "reconfiguring file sink")
	}

	return nil
}
