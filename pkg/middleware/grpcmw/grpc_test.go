package grpcmw

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
	"github.com/hyp3rd/flaglog/pkg/adapter"
)

func newBufferedLogger(t *testing.T) (*adapter.Adapter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	config := flaglog.DefaultConfig("grpc-test", flaglog.FlagsAll)
	config.Output = &buf
	config.DateMode = flaglog.DateDisabled
	config.ColorMode = flaglog.ColorDisabled

	logger, err := adapter.NewAdapter(config, true)
	require.NoError(t, err)

	t.Cleanup(func() { _ = logger.Destroy() })

	return logger, &buf
}

func TestUnaryServerInterceptorMetadataExtraction(t *testing.T) {
	t.Parallel()

	traceID := "trace-123"
	requestID := "request-456"

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		constants.TraceHeader, traceID,
		constants.RequestHeader, requestID,
	))

	interceptor := UnaryServerInterceptor()

	var capturedTrace, capturedRequest string

	handler := func(ctx context.Context, _ any) (any, error) {
		capturedTrace, _ = ctx.Value(constants.TraceKey{}).(string)
		capturedRequest, _ = ctx.Value(constants.RequestKey{}).(string)

		return "ok", nil
	}

	resp, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	require.Equal(t, "ok", resp)
	require.Equal(t, traceID, capturedTrace)
	require.Equal(t, requestID, capturedRequest)
}

func TestUnaryServerInterceptorCustomKeys(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		"x-trace", "custom-trace",
		"x-request", "custom-request",
	))

	interceptor := UnaryServerInterceptor(
		WithTraceKey("x-trace"),
		WithRequestKey("x-request"),
	)

	handler := func(ctx context.Context, _ any) (any, error) {
		require.Equal(t, "custom-trace", ctx.Value(constants.TraceKey{}))
		require.Equal(t, "custom-request", ctx.Value(constants.RequestKey{}))

		return nil, nil
	}

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
}

func TestUnaryServerInterceptorLogsOutcome(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		handlerErr error
		failure    flaglog.Flag
		wantPrefix string
		wantCode   string
	}{
		{name: "ok", wantPrefix: "<info> grpc /echo.Echo/Say ", wantCode: "code=OK"},
		{
			name:       "failure",
			handlerErr: status.Error(codes.NotFound, "missing"),
			wantPrefix: "<error> grpc /echo.Echo/Say ",
			wantCode:   "code=NotFound",
		},
		{
			name:       "custom failure flag",
			handlerErr: status.Error(codes.Unavailable, "down"),
			failure:    flaglog.Warn,
			wantPrefix: "<warn> grpc /echo.Echo/Say ",
			wantCode:   "code=Unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := newBufferedLogger(t)

			opts := []Option{WithLogger(logger)}
			if tc.failure != 0 {
				opts = append(opts, WithFailureFlag(tc.failure))
			}

			ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-trace-id", "t1"))
			interceptor := UnaryServerInterceptor(opts...)

			_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/echo.Echo/Say"},
				func(context.Context, any) (any, error) { return nil, tc.handlerErr })
			require.ErrorIs(t, err, tc.handlerErr)

			line := buf.String()
			assert.True(t, len(line) > 0 && line[len(line)-1] == '\n')
			assert.Contains(t, line, tc.wantPrefix)
			assert.Contains(t, line, tc.wantCode)
			assert.Contains(t, line, "trace=t1 request=-")
		})
	}
}

func TestUnaryServerInterceptorFilteredFlag(t *testing.T) {
	t.Parallel()

	logger, buf := newBufferedLogger(t)
	logger.Disable(flaglog.Info)

	interceptor := UnaryServerInterceptor(WithLogger(logger))

	_, err := interceptor(context.Background(), nil, nil,
		func(context.Context, any) (any, error) { return nil, nil })
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
