package adapter

import (
	"fmt"

	"github.com/hyp3rd/flaglog"
)

// emit is the guarded path shared by every logging method. Filtering happens
// before the message is rendered.
func (a *Adapter) emit(flag flaglog.Flag, newline bool, format string, args ...any) {
	if !a.guard.active() {
		return
	}

	if !a.guard.lock() {
		return
	}
	defer a.guard.unlock()

	if !flag.EnabledIn(a.config.Flags) {
		return
	}

	ev := event{
		flag:    flag,
		at:      a.now(),
		newline: newline,
	}

	if a.config.TraceThreadID {
		ev.tid = a.threadID()
	}

	lb := a.getLine()
	defer a.putLine(lb)

	line, ok := a.render(lb, &ev, format, args...)
	if !ok {
		return
	}

	a.dispatch(&ev, line)
}

// dispatch hands line to the callback, the screen and the file, in that order.
// A failing sink never keeps the following ones from running; a suppressing
// callback verdict skips both the screen and the file.
func (a *Adapter) dispatch(ev *event, line []byte) {
	cfg := &a.config

	if cfg.Callback != nil && cfg.Callback(line, ev.flag, cfg.CallbackData).Suppresses() {
		return
	}

	if cfg.ToScreen && a.screen != nil {
		a.writeScreen(line)
	}

	if cfg.ToFile && a.file != nil {
		// Failures are reported through the file writer's error handler.
		_, _ = a.file.WriteAt(ev.at, line)
	}
}

func (a *Adapter) writeScreen(line []byte) {
	_, err := a.screen.Write(line)
	if err != nil {
		a.diagf("flaglog: screen write failed: %v", err)

		return
	}

	if a.config.Flush {
		err = a.screen.Sync()
		if err != nil {
			a.diagf("flaglog: screen flush failed: %v", err)
		}
	}
}

// diagf writes one diagnostic line without taking the guard.
func (a *Adapter) diagf(format string, args ...any) {
	fmt.Fprintf(a.diag, format+"\n", args...)
}

// reportFileError is the error handler of the file sink.
func (a *Adapter) reportFileError(err error) {
	a.diagf("flaglog: file sink: %v", err)
}
