package adapter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
)

const (
	timeOnlyLayout = "15:04:05.000"
	fullDateLayout = "2006.01.02-15:04:05.000"

	// indent is as wide as the longest tag block, "<debug>".
	indent = "       "
)

// heapFormat renders messages in heap mode.
//
//nolint:gochecknoglobals
var heapFormat = fmt.Sprintf

// event is one emit call, alive only while it is rendered and dispatched.
type event struct {
	flag    flaglog.Flag
	at      time.Time
	tid     uint64
	newline bool
}

// appendPrefix writes the thread, date and tag blocks of ev.
func appendPrefix(dst []byte, ev *event, cfg *flaglog.Config, mode flaglog.ColorMode) []byte {
	if cfg.TraceThreadID {
		dst = append(dst, '(')
		dst = strconv.AppendUint(dst, ev.tid, 10)
		dst = append(dst, ") "...)
	}

	switch cfg.DateMode {
	case flaglog.DateTimeOnly:
		dst = ev.at.AppendFormat(dst, timeOnlyLayout)
		dst = append(dst, cfg.Separator...)
	case flaglog.DateFull:
		dst = ev.at.AppendFormat(dst, fullDateLayout)
		dst = append(dst, cfg.Separator...)
	case flaglog.DateDisabled:
	}

	tag, tagged := ev.flag.Tag()

	switch {
	case tagged:
		dst = append(dst, '<')

		if mode == flaglog.ColorTag {
			dst = append(dst, ev.flag.Color()...)
			dst = append(dst, tag...)
			dst = append(dst, flaglog.Reset...)
		} else {
			dst = append(dst, tag...)
		}

		dst = append(dst, '>')
		dst = append(dst, cfg.Separator...)
	case cfg.Indent:
		dst = append(dst, indent...)
		dst = append(dst, cfg.Separator...)
	}

	return dst
}

// render composes the complete line of ev into lb and returns it. It reports
// false when the event has to be dropped.
func (a *Adapter) render(lb *lineBuffer, ev *event, format string, args ...any) ([]byte, bool) {
	cfg := &a.config
	mode := a.colorMode()

	color := ev.flag.Color()
	fullLine := mode == flaglog.ColorFull && color != ""

	line := lb.b[:0]
	if fullLine {
		line = append(line, color...)
	}

	start := len(line)

	line = appendPrefix(line, ev, cfg, mode)
	if len(line)-start > constants.MaxPrefixSize {
		line = trimPartialRune(line[:start+constants.MaxPrefixSize], start)
	}

	if cfg.UseHeap {
		msg, ok := a.heapMessage(format, args...)
		if !ok {
			return nil, false
		}

		exact := make([]byte, 0, len(line)+len(msg)+len(flaglog.Reset)+1)
		exact = append(exact, line...)
		line = append(exact, msg...)
	} else {
		line = appendBounded(line, format, args...)
		lb.b = line
	}

	if fullLine {
		line = append(line, flaglog.Reset...)
	}

	if ev.newline {
		line = append(line, '\n')
	}

	return line, true
}

// appendBounded renders the message after dst, keeping at most MaxMessageSize bytes.
func appendBounded(dst []byte, format string, args ...any) []byte {
	start := len(dst)
	writer := boundedWriter{buf: dst, limit: start + constants.MaxMessageSize}

	fmt.Fprintf(&writer, format, args...)

	if writer.truncated {
		return trimPartialRune(writer.buf, start)
	}

	return writer.buf
}

// heapMessage renders the message into its own allocation. A panic while
// rendering drops the event and is reported on the diagnostic writer.
//
//nolint:nonamedreturns
func (a *Adapter) heapMessage(format string, args ...any) (msg string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.diagf("flaglog: dropping record, message allocation failed: %v", r)

			msg, ok = "", false
		}
	}()

	return heapFormat(format, args...), true
}

// colorMode returns the color mode in effect, honoring AutoColor.
func (a *Adapter) colorMode() flaglog.ColorMode {
	if a.config.AutoColor && (a.screen == nil || !a.screen.IsTerminal()) {
		return flaglog.ColorDisabled
	}

	return a.config.ColorMode
}
