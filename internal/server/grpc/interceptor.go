package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// requestLogInterceptor logs every unary call with its method and duration.
// The three exposed operations establish identity themselves, so there is no
// token check here.
func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	start := time.Now()

	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "handled request",
		"method", info.FullMethod,
		"duration", time.Since(start),
		"error", err,
	)

	return resp, err
}
