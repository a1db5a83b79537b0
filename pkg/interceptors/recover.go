package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

var errInternal = status.Error(codes.Internal, "internal server error")

// Recover ловит панику обработчика и отвечает codes.Internal без деталей.
// Запись panic_recovered (method, panic, stack) уходит в логгер из контекста,
// а если его там нет, то в base.
func Recover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			loggerFor(ctx, base).LogAttrs(ctx, slog.LevelError, "panic_recovered",
				slog.String("method", info.FullMethod),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)

			resp, err = nil, errInternal
		}()

		return handler(ctx, req)
	}
}

func loggerFor(ctx context.Context, base *slog.Logger) *slog.Logger {
	if l := log.From(ctx); l != slog.Default() || base == nil {
		return l
	}

	return base
}
