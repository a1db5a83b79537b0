// interceptors — серверные gRPC-интерсепторы feed-service: recover, логирование, дедлайны.
package interceptors

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WithTimeout навешивает дедлайн на вызов, если клиент его не передал.
//
// Особенности:
//   - perMethod переопределяет d для конкретного FullMethod;
//   - итоговое значение <= 0 — контекст не меняется;
//   - дедлайн клиента не переопределяется;
//   - "голые" context.DeadlineExceeded / context.Canceled из handler
//     превращаются в соответствующие gRPC-статусы.
func WithTimeout(d time.Duration, perMethod map[string]time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		timeout := d
		if v, ok := perMethod[info.FullMethod]; ok {
			timeout = v
		}

		if _, ok := ctx.Deadline(); !ok && timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		resp, err := handler(ctx, req)

		return resp, contextToStatus(err)
	}
}

func contextToStatus(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	default:
		return err
	}
}
