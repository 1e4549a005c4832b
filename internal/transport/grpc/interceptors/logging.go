// Package interceptors holds the unary server interceptors of the gRPC API.
package interceptors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/autocat-service/internal/pkg/logctx"
)

// MetadataRequestID is the incoming metadata key read for the request id.
const MetadataRequestID = "x-request-id"

// UnaryLogging puts a logger tagged with request id, method and peer in
// the context and writes one "grpc" line per call with the status code.
func UnaryLogging(base *zap.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = zap.NewNop()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		var rid string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(MetadataRequestID); len(v) > 0 && v[0] != "" {
				rid = v[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
		}

		peerStr := "-"
		if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
			peerStr = p.Addr.String()
		}

		l := base.With(
			zap.String("request_id", rid),
			zap.String("method", info.FullMethod),
			zap.String("peer", peerStr),
		)
		ctx = logctx.Into(ctx, l)

		resp, err := handler(ctx, req)

		l.Info("grpc",
			zap.String("code", status.Code(err).String()),
			zap.Duration("dur", time.Since(start)),
		)
		return resp, err
	}
}
