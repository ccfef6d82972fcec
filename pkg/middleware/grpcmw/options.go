package grpcmw

import "github.com/hyp3rd/flaglog"

// Option defines a configuration option for the gRPC middleware.
type Option func(*options)

type options struct {
	traceKey   string
	requestKey string
	logger     flaglog.Logger
	failures   flaglog.Flag
}

// WithTraceKey customizes the metadata key used to populate the trace identifier.
func WithTraceKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.traceKey = name
	}
}

// WithRequestKey customizes the metadata key used to populate the request identifier.
func WithRequestKey(name string) Option {
	return func(o *options) {
		if o == nil || name == "" {
			return
		}

		o.requestKey = name
	}
}

// WithLogger sets the logger receiving one record per call. Without it calls are not logged.
func WithLogger(logger flaglog.Logger) Option {
	return func(o *options) {
		if o == nil || logger == nil {
			return
		}

		o.logger = logger
	}
}

// WithFailureFlag sets the flag of records for calls that returned an error. Defaults to Error.
func WithFailureFlag(flag flaglog.Flag) Option {
	return func(o *options) {
		if o == nil {
			return
		}

		o.failures = flag
	}
}
