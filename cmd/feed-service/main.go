package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/petershoe2005/GatherU-sub000/internal/cache"
	"github.com/petershoe2005/GatherU-sub000/internal/config"
	"github.com/petershoe2005/GatherU-sub000/internal/interest"
	"github.com/petershoe2005/GatherU-sub000/internal/metrics"
	"github.com/petershoe2005/GatherU-sub000/internal/recorder"
	"github.com/petershoe2005/GatherU-sub000/internal/scheduler"
	"github.com/petershoe2005/GatherU-sub000/internal/service"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
	fsmongo "github.com/petershoe2005/GatherU-sub000/internal/storage/mongo"
	"github.com/petershoe2005/GatherU-sub000/internal/storage/postgres"
	feedgrpc "github.com/petershoe2005/GatherU-sub000/internal/transport/grpc"
	feedhttp "github.com/petershoe2005/GatherU-sub000/internal/transport/http"
	"github.com/petershoe2005/GatherU-sub000/internal/transport/http/handlers"
	"github.com/petershoe2005/GatherU-sub000/internal/transport/http/middleware"
	logctx "github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	// .env необязателен: в контейнере переменные приходят из окружения.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("service_starting", "service", "feed-service", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("service_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}

	log.Info("service_stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		return err
	}
	defer store.Close()
	log.Info("postgres_connected")

	checks := map[string]handlers.ReadinessCheck{"postgres": store.Ping}

	var views storage.ViewStorage = store
	if cfg.Views.Backend == config.ViewsBackendMongo {
		mCtx, mCancel := context.WithTimeout(ctx, 10*time.Second)
		mongoViews, err := fsmongo.New(mCtx, cfg.Mongo)
		mCancel()
		if err != nil {
			log.Error("mongo_connect_failed", slog.String("err", err.Error()))
			return err
		}
		defer func() { _ = mongoViews.Close(context.Background()) }()

		views = mongoViews
		checks["mongo"] = mongoViews.Ping
		log.Info("mongo_connected")
	}

	snapshots := setupCache(ctx, cfg.Redis, log)
	defer func() { _ = snapshots.Close() }()

	m := metrics.New(prometheus.DefaultRegisterer)

	rec := recorder.New(views, interest.New(store), m, recorder.Config{
		QueueSize:     cfg.Recorder.QueueSize,
		Workers:       cfg.Recorder.Workers,
		RatePerSecond: cfg.Recorder.RatePerSecond,
		Burst:         cfg.Recorder.Burst,
		WriteTimeout:  cfg.Recorder.WriteTimeout,
	})

	svc, err := service.New(store, rec, snapshots, m, cfg.Ranking,
		service.WithSnapshotRefresh(cfg.Redis.SnapshotRefresh, cfg.Timeouts.Service),
	)
	if err != nil {
		log.Error("service_init_failed", slog.String("err", err.Error()))
		return err
	}
	defer svc.Close()
	log.Info("service_initialized")

	// Фоновые задачи: запись просмотров живёт до конца дренажа очереди,
	// а не до сигнала, поэтому у неё свой контекст.
	bgCtx := logctx.Into(context.Background(), log)
	recCtx, recCancel := context.WithCancel(bgCtx)
	defer recCancel()

	recDone := make(chan error, 1)
	go func() { recDone <- rec.Run(recCtx) }()

	sweepCtx, sweepCancel := context.WithCancel(logctx.Into(ctx, log))
	defer sweepCancel()

	var bg errgroup.Group
	if !cfg.Boosts.Disabled {
		sweeper, err := scheduler.NewSweeper(svc, cfg.Boosts.SweepSpec, cfg.Timeouts.Service)
		if err != nil {
			log.Error("sweeper_init_failed", slog.String("err", err.Error()))
			return err
		}
		bg.Go(func() error { return sweeper.Run(sweepCtx) })
	}

	// HTTP: REST API + health + metrics.
	httpSrv := &http.Server{
		Addr: cfg.HTTP.Addr(),
		Handler: feedhttp.NewRouter(svc, feedhttp.Options{
			Logger:  log,
			Timeout: cfg.Timeouts.Service,
			Auth: middleware.AuthOptions{
				Secret:   cfg.Auth.JWTSecret,
				Issuer:   cfg.Auth.Issuer,
				Audience: cfg.Auth.Audience,
				Leeway:   cfg.Auth.Leeway,
			},
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Gatherer:       prometheus.DefaultGatherer,
			Checks:         checks,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC: grpc.health.v1.
	grpcSrv := feedgrpc.NewServer(feedgrpc.Options{
		Logger:     log,
		Timeout:    cfg.Timeouts.Service,
		Reflection: cfg.Env == envLocal || cfg.Env == envDev,
	})

	lis, err := net.Listen("tcp", cfg.GRPC.Addr())
	if err != nil {
		log.Error("grpc_listen_failed",
			slog.String("addr", cfg.GRPC.Addr()),
			slog.String("err", err.Error()),
		)
		return err
	}

	serveErrCh := make(chan error, 2)

	go func() {
		log.Info("http_listen_start", slog.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
	}()

	go func() {
		log.Info("grpc_listen_start", slog.String("addr", cfg.GRPC.Addr()))
		if err := grpcSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			serveErrCh <- err
		}
	}()

	grpcSrv.SetServing(true)

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown_requested")
	case serveErr = <-serveErrCh:
		log.Error("serve_failed", slog.String("err", serveErr.Error()))
	}

	grpcSrv.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_failed", slog.String("err", err.Error()))
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Info("grpc_stopped")
	case <-shutdownCtx.Done():
		log.Warn("grpc_force_stop")
		grpcSrv.Stop()
	}

	sweepCancel()
	_ = bg.Wait()

	// Новых просмотров больше нет: дописываем очередь в пределах дедлайна.
	rec.Close()
	select {
	case <-recDone:
		log.Info("recorder_drained")
	case <-shutdownCtx.Done():
		log.Warn("recorder_force_stop")
		recCancel()
		<-recDone
	}

	return serveErr
}

// setupCache подключает Redis для снимка объявлений.
// Без URL или при недоступном Redis лента работает без снимка.
func setupCache(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) cache.ListingCache {
	if cfg.URL == "" {
		return cache.Nop{}
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := cache.NewRedisCache(cctx, cfg.URL, cfg.SnapshotKey, cfg.SnapshotTTL)
	if err != nil {
		log.Warn("redis_unavailable", slog.String("err", err.Error()))
		return cache.Nop{}
	}

	log.Info("redis_connected")
	return c
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
