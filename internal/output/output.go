// Package output provides the screen and file destinations of the logger.
//
// Each destination implements the Writer interface, which extends io.Writer with
// methods for synchronization and cleanup:
//
//	type Writer interface {
//	    io.Writer
//	    Sync() error  // Ensures all data is written
//	    Close() error // Releases resources
//	}
//
// FileWriter provides file-based logging with:
// - Lazy opening in append mode, creating the directory when needed
// - Daily file names and a switch to a new file when the calendar day changes
// - Optional flush after every record and optional close after every record
//
// ConsoleWriter provides screen output with:
// - ANSI escape translation on Windows consoles
// - Terminal detection used to drop colors for redirected output
// - Flushing of buffered destinations
package output

import (
	"bufio"
	"io"
	"os"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/flaglog/internal/constants"
	"github.com/hyp3rd/flaglog/internal/utils"
)

// Writer is an interface for log output writers.
type Writer interface {
	// Write writes the given bytes to the underlying output.
	Write(p []byte) (n int, err error)
	// Sync ensures that all data has been written.
	Sync() error
	// Close closes the writer and releases any resources.
	Close() error
}

// FileConfig holds configuration for file output.
type FileConfig struct {
	// Dir is the directory holding the log files
	Dir string
	// Name is the base file name, without date or extension
	Name string
	// FileMode sets the permissions for new log files
	FileMode os.FileMode
	// RotateDaily adds the record date to the file name
	RotateDaily bool
	// KeepOpen keeps the handle open between records
	KeepOpen bool
	// Flush flushes the file buffer after every record
	Flush bool
	// ErrorHandler is called when errors occur during file operations
	ErrorHandler func(error)
}

// FileWriter implements Writer for file-based logging. The file is opened on the
// first write and reopened whenever the target path changes.
type FileWriter struct {
	mu     sync.Mutex
	config FileConfig
	file   *os.File
	buf    *bufio.Writer
	path   string
	day    time.Time
	now    func() time.Time
	closed bool
}

// NewFileWriter creates a new file-based log writer. No file is opened until the
// first record is written. now supplies the time used to pick the dated file name
// for plain Write calls; nil means time.Now.
func NewFileWriter(config FileConfig, now func() time.Time) (*FileWriter, error) {
	err := utils.ValidateName(config.Name)
	if err != nil {
		return nil, ewrap.Wrap(err, "invalid log file name")
	}

	if config.FileMode == 0 {
		config.FileMode = constants.LogFilePermissions
	}

	if now == nil {
		now = time.Now
	}

	return &FileWriter{
		config: config,
		now:    now,
	}, nil
}

// Write implements io.Writer using the current time to select the file.
func (w *FileWriter) Write(data []byte) (int, error) {
	return w.WriteAt(w.now(), data)
}

// WriteAt writes one record stamped at. When daily rotation is on and at falls on
// another day than the open file, the file is closed and the dated file of at is
// opened instead. Open failures are reported to the error handler.
func (w *FileWriter) WriteAt(at time.Time, data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrWriterClosed
	}

	if w.file != nil && w.config.RotateDaily && !utils.SameDay(w.day, at) {
		w.report(w.closeHandle())
	}

	if w.file == nil {
		err := w.open(at)
		if err != nil {
			w.report(err)

			return 0, err
		}
	}

	bytesWritten, err := w.buf.Write(data)
	if err != nil {
		err = ewrap.Wrap(err, "failed writing to log file").WithMetadata("path", w.path)
		w.report(err)
		w.discardHandle()

		return bytesWritten, err
	}

	switch {
	case !w.config.KeepOpen:
		err = w.closeHandle()
	case w.config.Flush:
		err = w.flush()
	}

	if err != nil {
		w.report(err)
		w.discardHandle()

		return bytesWritten, err
	}

	return bytesWritten, nil
}

// Path returns the file the next record written now would go to.
func (w *FileWriter) Path() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return utils.LogFilePath(w.config.Dir, w.config.Name, w.now(), w.config.RotateDaily)
}

// Config returns the current file configuration.
func (w *FileWriter) Config() FileConfig {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.config
}

// Reconfigure replaces the configuration. The open handle is closed when the
// directory, the name or the rotation mode changes, so the next record opens the
// new target.
func (w *FileWriter) Reconfigure(config FileConfig) error {
	err := utils.ValidateName(config.Name)
	if err != nil {
		return ewrap.Wrap(err, "invalid log file name")
	}

	if config.FileMode == 0 {
		config.FileMode = constants.LogFilePermissions
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	moved := config.Dir != w.config.Dir ||
		config.Name != w.config.Name ||
		config.RotateDaily != w.config.RotateDaily

	w.config = config

	if moved || !config.KeepOpen {
		return w.closeHandle()
	}

	return nil
}

// IsOpen reports whether a file handle is currently held.
func (w *FileWriter) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file != nil
}

// Sync flushes buffered records and syncs the open file to disk.
// If no file is open, Sync returns nil without error.
func (w *FileWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}

	err := w.flush()
	if err != nil {
		return err
	}

	err = w.file.Sync()
	if err != nil {
		return ewrap.Wrapf(err, "syncing log file").WithMetadata("path", w.path)
	}

	return nil
}

// Close flushes and closes the open file. Later writes fail with ErrWriterClosed.
// Closing twice returns nil without error.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true

	return w.closeHandle()
}

func (w *FileWriter) open(at time.Time) error {
	path, err := utils.LogFilePath(w.config.Dir, w.config.Name, at, w.config.RotateDaily)
	if err != nil {
		return ewrap.Wrap(err, "building log file path")
	}

	dir := w.config.Dir
	if dir == "" {
		dir = constants.DefaultFilePath
	}

	err = os.MkdirAll(dir, constants.LogDirPermissions)
	if err != nil {
		return ewrap.Wrapf(err, "creating log directory").
			WithMetadata("path", dir)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, w.config.FileMode)
	if err != nil {
		return ewrap.Wrapf(err, "opening log file").
			WithMetadata("path", path)
	}

	w.file = file
	w.path = path
	w.day = at

	if w.buf == nil {
		w.buf = bufio.NewWriterSize(file, constants.FileBufferSize)
	} else {
		w.buf.Reset(file)
	}

	return nil
}

func (w *FileWriter) flush() error {
	if w.buf == nil {
		return nil
	}

	err := w.buf.Flush()
	if err != nil {
		return ewrap.Wrapf(err, "flushing log file").WithMetadata("path", w.path)
	}

	return nil
}

// discardHandle drops the open file after a failed write. bufio.Writer keeps
// returning its first error, so the next record has to reopen the file.
func (w *FileWriter) discardHandle() {
	if w.file == nil {
		return
	}

	w.buf.Reset(io.Discard)
	_ = w.file.Close()
	w.file = nil
}

// closeHandle flushes and closes the open file, keeping the writer usable.
func (w *FileWriter) closeHandle() error {
	if w.file == nil {
		return nil
	}

	flushErr := w.flush()

	err := w.file.Close()
	w.file = nil

	w.buf.Reset(io.Discard)

	if flushErr != nil {
		return flushErr
	}

	if err != nil {
		return ewrap.Wrapf(err, "closing log file").WithMetadata("path", w.path)
	}

	return nil
}

func (w *FileWriter) report(err error) {
	if err != nil && w.config.ErrorHandler != nil {
		w.config.ErrorHandler(err)
	}
}
