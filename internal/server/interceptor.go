package server

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
)

const apiKeyHeader = "x-api-key"

// APIKeyUnaryInterceptor rejects calls whose metadata does not carry the
// pre-shared key and tags every accepted call with a request ID. An empty
// configured key disables the auth check. Health checks are always allowed
// through.
func APIKeyUnaryInterceptor(apiKey string, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, "/grpc.health.v1.Health/") {
			return handler(ctx, req)
		}
		ctx = common.WithRequestID(ctx, uuid.New().String())
		if apiKey == "" {
			return handler(ctx, req)
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		keys := md.Get(apiKeyHeader)
		if len(keys) == 0 {
			logger.Warn("request missing api key", "method", info.FullMethod,
				"req_id", common.RequestIDFromContext(ctx))
			return nil, status.Error(codes.Unauthenticated, "missing api key")
		}
		if subtle.ConstantTimeCompare([]byte(keys[0]), []byte(apiKey)) != 1 {
			logger.Warn("request with bad api key", "method", info.FullMethod,
				"req_id", common.RequestIDFromContext(ctx))
			return nil, status.Error(codes.Unauthenticated, "invalid api key")
		}
		return handler(ctx, req)
	}
}
