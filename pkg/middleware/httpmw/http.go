// Package httpmw provides net/http middleware that propagates request identifiers
// and writes access records through a flaglog.Logger.
package httpmw

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/hyp3rd/flaglog/internal/constants"
)

const randomIDLength = 16

// Option configures ContextMiddleware.
type Option func(*options)

type options struct {
	traceHeader    string
	requestHeader  string
	idGenerator    func() string
	generateIfMiss bool
}

// WithTraceHeader sets the header the trace id is read from.
func WithTraceHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.traceHeader = name
		}
	}
}

// WithRequestHeader sets the header the request id is read from.
func WithRequestHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.requestHeader = name
		}
	}
}

// WithIDGenerator replaces the random hex generator used for missing ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.idGenerator = fn
		}
	}
}

// WithGenerateMissingIDs controls whether missing ids are generated. On by default.
func WithGenerateMissingIDs(enable bool) Option {
	return func(o *options) {
		o.generateIfMiss = enable
	}
}

// ContextMiddleware stores the trace and request ids of each request in its context
// under constants.TraceKey and constants.RequestKey, where AccessLog picks them up.
func ContextMiddleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := options{
		traceHeader:    constants.TraceHeader,
		requestHeader:  constants.RequestHeader,
		idGenerator:    randomID,
		generateIfMiss: true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = withID(ctx, constants.TraceKey{}, cfg.resolve(r.Header.Get(cfg.traceHeader)))
			ctx = withID(ctx, constants.RequestKey{}, cfg.resolve(r.Header.Get(cfg.requestHeader)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolve returns the header value, or a generated id when it is empty and generation is on.
func (o options) resolve(header string) string {
	if header != "" || !o.generateIfMiss {
		return header
	}

	return o.idGenerator()
}

func withID(ctx context.Context, key any, value string) context.Context {
	if value == "" {
		return ctx
	}

	return context.WithValue(ctx, key, value)
}

// requestID returns the request id stored by ContextMiddleware, or "-".
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(constants.RequestKey{}).(string); ok && id != "" {
		return id
	}

	return "-"
}

func randomID() string {
	buf := make([]byte, randomIDLength)

	_, err := rand.Read(buf)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(buf)
}
