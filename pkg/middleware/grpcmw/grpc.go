// Package grpcmw provides gRPC server interceptors that carry request identifiers
// into the handler context and log one record per call.
package grpcmw

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
)

func actualOptions(opts ...Option) options {
	cfg := options{
		logger:   flaglog.NewNoop(),
		failures: flaglog.Error,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.traceKey == "" {
		cfg.traceKey = "x-trace-id"
	}

	if cfg.requestKey == "" {
		cfg.requestKey = "x-request-id"
	}

	return cfg
}

// UnaryServerInterceptor enriches the gRPC context with metadata values and logs the
// outcome of every call: Info for OK, the failure flag otherwise.
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	cfg := actualOptions(opts...)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var traceID, requestID string

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(cfg.traceKey); len(values) > 0 {
				traceID = values[0]
				ctx = context.WithValue(ctx, constants.TraceKey{}, traceID)
			}

			if values := md.Get(cfg.requestKey); len(values) > 0 {
				requestID = values[0]
				ctx = context.WithValue(ctx, constants.RequestKey{}, requestID)
			}
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		method := "unknown"
		if info != nil && info.FullMethod != "" {
			method = info.FullMethod
		}

		code := status.Code(err)

		flag := flaglog.Info
		if code != codes.OK {
			flag = cfg.failures
		}

		cfg.logger.Emitf(flag, true, "grpc %s code=%s duration=%s trace=%s request=%s",
			method, code, time.Since(start).Round(time.Microsecond), orDash(traceID), orDash(requestID))

		return resp, err
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
