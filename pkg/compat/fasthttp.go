package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/hyp3rd/flaglog"
)

// FastHTTPAdapter implements the fasthttp.Logger interface on top of a flaglog.Logger.
type FastHTTPAdapter struct {
	logger      flaglog.Logger
	defaultFlag flaglog.Flag
	detector    func(msg string) flaglog.Flag
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPOption customizes a FastHTTPAdapter.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultFlag sets the flag used when the detector finds nothing. Defaults to Info.
func WithDefaultFlag(flag flaglog.Flag) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultFlag = flag
	}
}

// WithFlagDetector replaces DetectFlag. A nil detector always uses the default flag.
func WithFlagDetector(detector func(msg string) flaglog.Flag) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.detector = detector
	}
}

// NewFastHTTPAdapter creates a fasthttp-compatible logger.
func NewFastHTTPAdapter(logger flaglog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:      logger,
		defaultFlag: flaglog.Info,
		detector:    DetectFlag,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Printf logs the formatted message under the flag detected from its content.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	flag := a.defaultFlag
	if a.detector != nil {
		if detected := a.detector(msg); detected != flaglog.Always {
			flag = detected
		}
	}

	a.logger.Emit(flag, true, msg)
}

// DetectFlag guesses a flag from the wording of a fasthttp message. It returns
// flaglog.Always when nothing matches.
func DetectFlag(msg string) flaglog.Flag {
	lower := strings.ToLower(msg)

	switch {
	case containsAny(lower, "error", "failed", "fatal", "panic"):
		return flaglog.Error
	case containsAny(lower, "warn", "deprecated"):
		return flaglog.Warn
	case containsAny(lower, "debug", "trace"):
		return flaglog.Debug
	default:
		return flaglog.Always
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}
