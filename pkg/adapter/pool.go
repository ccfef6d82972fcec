package adapter

import (
	"sync"
	"unicode/utf8"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
)

// lineCapacity fits the longest line the fixed-capacity strategy can produce:
// a bounded prefix and message, wrapped in a full-line color and its reset.
const lineCapacity = constants.MaxPrefixSize + constants.MaxMessageSize +
	2*len(flaglog.BoldMagenta) + len(flaglog.Reset) + 1

// lineBuffer is a pooled rendering buffer of lineCapacity bytes.
type lineBuffer struct {
	b []byte
}

func newLinePool() *sync.Pool {
	return &sync.Pool{
		New: func() any {
			return &lineBuffer{b: make([]byte, 0, lineCapacity)}
		},
	}
}

// getLine retrieves an empty line buffer from the pool.
func (a *Adapter) getLine() *lineBuffer {
	if lb, ok := a.linePool.Get().(*lineBuffer); ok {
		lb.b = lb.b[:0]

		return lb
	}

	return &lineBuffer{b: make([]byte, 0, lineCapacity)}
}

// putLine returns a buffer to the pool. Buffers that grew past lineCapacity are
// left to the garbage collector.
func (a *Adapter) putLine(lb *lineBuffer) {
	if lb == nil || cap(lb.b) > lineCapacity {
		return
	}

	lb.b = lb.b[:0]
	a.linePool.Put(lb)
}

// boundedWriter appends to buf until it holds limit bytes and silently drops
// the rest. Writes always report success.
type boundedWriter struct {
	buf       []byte
	limit     int
	truncated bool
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	room := w.limit - len(w.buf)
	if len(p) > room {
		w.truncated = true
		w.buf = append(w.buf, p[:max(room, 0)]...)

		return len(p), nil
	}

	w.buf = append(w.buf, p...)

	return len(p), nil
}

func (w *boundedWriter) WriteString(s string) (int, error) {
	room := w.limit - len(w.buf)
	if len(s) > room {
		w.truncated = true
		w.buf = append(w.buf, s[:max(room, 0)]...)

		return len(s), nil
	}

	w.buf = append(w.buf, s...)

	return len(s), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence left at the end of b by a
// truncation. Bytes before floor are never inspected.
func trimPartialRune(b []byte, floor int) []byte {
	for i := len(b) - 1; i >= floor && i >= len(b)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}

		if !utf8.FullRune(b[i:]) {
			return b[:i]
		}

		return b
	}

	return b
}
