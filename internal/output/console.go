package output

import (
	"io"
	"os"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// ConsoleWriter writes composed records to the screen destination.
// It does not own the destination: Close flushes it but never closes it.
type ConsoleWriter struct {
	out        io.Writer
	raw        io.Writer
	isTerminal bool
}

// NewConsoleWriter creates a ConsoleWriter for out. Files are wrapped so ANSI
// sequences work on Windows consoles. If out is nil, it defaults to os.Stdout.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	if out == nil {
		out = os.Stdout
	}

	writer := &ConsoleWriter{
		out:        out,
		raw:        out,
		isTerminal: IsTerminal(out),
	}

	if f, ok := out.(*os.File); ok {
		writer.out = colorable.NewColorable(f)
	}

	return writer
}

// Write writes payload to the destination unchanged.
func (w *ConsoleWriter) Write(payload []byte) (int, error) {
	bytesWritten, err := w.out.Write(payload)
	if err != nil {
		return bytesWritten, ewrap.Wrap(err, "failed writing to console output")
	}

	return bytesWritten, nil
}

// Underlying returns the destination the writer was created with.
func (w *ConsoleWriter) Underlying() io.Writer {
	return w.raw
}

// IsTerminal reports whether the destination is an interactive terminal.
func (w *ConsoleWriter) IsTerminal() bool {
	return w.isTerminal
}

// Sync flushes a buffered destination, or syncs a file that is not a standard
// stream. Other destinations need nothing and return nil.
func (w *ConsoleWriter) Sync() error {
	if f, ok := w.raw.(flusher); ok {
		err := f.Flush()
		if err != nil {
			return ewrap.Wrap(err, "flushing console output")
		}

		return nil
	}

	if f, ok := w.raw.(*os.File); ok && isStandardStream(f) {
		return nil
	}

	if s, ok := w.raw.(syncer); ok {
		err := s.Sync()
		if err != nil {
			return ewrap.Wrap(err, "syncing console output")
		}
	}

	return nil
}

// Close flushes the destination without closing it.
func (w *ConsoleWriter) Close() error {
	return w.Sync()
}

func isStandardStream(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}

// IsTerminal checks if the given writer is a terminal. It returns true if the writer is
// a file connected to a terminal, and false otherwise. This function is used to determine
// whether to keep color sequences in screen output.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}
