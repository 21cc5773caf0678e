package grpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/rpc"
	"github.com/MKhiriev/go-post-hub/internal/utils"
)

// UnaryInterceptors returns the interceptor chain of the posts server in
// execution order.
func (h *Handler) UnaryInterceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
	}
}

// withTraceID binds a child logger carrying the caller's trace id (or a
// fresh one) to the context and echoes the id back in the header metadata.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(rpc.TraceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	_ = grpc.SetHeader(ctx, metadata.Pairs(rpc.TraceIDMetadataKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withRecovery(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.FromContext(ctx).Error().
				Str("method", info.FullMethod).
				Any("panic", p).
				Bytes("stack", debug.Stack()).
				Msg("panic while handling request")
			err = status.Error(codes.Internal, internalMessage)
		}
	}()

	return handler(ctx, req)
}
