package grpc

import (
	"context"
	"log"
	"time"

	"terminal-terrace/mp-article/pkg/authsdk"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor 记录方法、耗时、状态码，token 有效时附带调用方用户ID
func LoggingInterceptor(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		user := authsdk.GetUserFromContext(ctx, secret)
		log.Printf("[gRPC] %s code=%s user_id=%d latency=%s",
			info.FullMethod, status.Code(err), user.UserID, time.Since(start))
		return resp, err
	}
}
