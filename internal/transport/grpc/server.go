// grpc — служебный gRPC-сервер feed-service: стандартный grpc.health.v1.
package grpc

import (
	"log/slog"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/petershoe2005/GatherU-sub000/pkg/interceptors"
)

// healthCheckTimeout — дедлайн для grpc.health.v1.Health/Check.
const healthCheckTimeout = time.Second

// Options — параметры сборки gRPC-сервера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	// Reflection включает gRPC reflection (local/dev).
	Reflection bool
}

// Server — gRPC-сервер и управляемый статус здоровья.
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewServer собирает gRPC-сервер с цепочкой интерсепторов и health-сервисом.
// Статус изначально NOT_SERVING до вызова SetServing(true).
func NewServer(opts Options) *Server {
	grpc_prometheus.EnableHandlingTimeHistogram()

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.Recover(opts.Logger),
			interceptors.UnaryLoggingInterceptor(opts.Logger),
			interceptors.WithTimeout(opts.Timeout, map[string]time.Duration{
				healthpb.Health_Check_FullMethodName: healthCheckTimeout,
			}),
			grpc_prometheus.UnaryServerInterceptor,
		),
		grpc.ChainStreamInterceptor(
			grpc_prometheus.StreamServerInterceptor,
		),
	)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	if opts.Reflection {
		reflection.Register(srv)
	}

	grpc_prometheus.Register(srv)

	return &Server{Server: srv, health: hs}
}

// SetServing переключает статус здоровья сервиса.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", st)
}
