// Package compat exposes a flaglog.Logger through the logging interfaces of other
// libraries: gnet, fasthttp and zap.
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/hyp3rd/flaglog"
)

// GnetAdapter implements the gnet logging.Logger interface on top of a flaglog.Logger.
type GnetAdapter struct {
	logger       flaglog.Logger
	fatalHandler func(msg string)
}

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetOption customizes a GnetAdapter.
type GnetOption func(*GnetAdapter)

// WithFatalHandler replaces the default os.Exit(1) run after Fatalf.
func WithFatalHandler(handler func(msg string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// NewGnetAdapter creates a gnet-compatible logger.
func NewGnetAdapter(logger flaglog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(string) {
			os.Exit(1)
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// Debugf logs under the Debug flag.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Debugf(format, args...)
}

// Infof logs under the Info flag.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Infof(format, args...)
}

// Warnf logs under the Warn flag.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warnf(format, args...)
}

// Errorf logs under the Error flag.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Errorf(format, args...)
}

// Fatalf logs under the Fatal flag, syncs the logger and runs the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Fatal(msg)

	_ = a.logger.Sync()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
