// service содержит бизнес-логику feed-service: сборку ленты и учёт просмотров.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/cache"
	"github.com/petershoe2005/GatherU-sub000/internal/config"
	"github.com/petershoe2005/GatherU-sub000/internal/interest"
	"github.com/petershoe2005/GatherU-sub000/internal/metrics"
	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/ranking"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует.
	// Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (стораж/БД/контекст).
	// Транспорт: 500.
	ErrInternal = errors.New("internal")
)

// ViewQueue принимает просмотры на фоновую запись.
// Реализуется recorder.Recorder.
type ViewQueue interface {
	Enqueue(ctx context.Context, viewerID string, l models.Listing) bool
}

// Service — описывает бизнес-логику feed-service.
type Service struct {
	storage  storage.Storage
	interest *interest.Model
	views    ViewQueue
	cache    cache.ListingCache
	snapshot *snapshotWriter
	builder  *ranking.Builder
	metrics  *metrics.Metrics
	cfg      config.RankingConfig
	now      func() time.Time
}

// Option настраивает Service.
type Option func(*options)

type options struct {
	snapshotRefresh time.Duration
	snapshotTimeout time.Duration
}

// WithSnapshotRefresh задаёт минимальный интервал между фоновыми записями
// снимка объявлений и дедлайн одной записи.
func WithSnapshotRefresh(interval, timeout time.Duration) Option {
	return func(o *options) {
		o.snapshotRefresh = interval
		o.snapshotTimeout = timeout
	}
}

// New создает новый экземпляр Service.
// c == nil заменяется на cache.Nop, m может быть nil.
func New(
	st storage.Storage,
	views ViewQueue,
	c cache.ListingCache,
	m *metrics.Metrics,
	cfg config.RankingConfig,
	opts ...Option,
) (*Service, error) {
	rc := RankingConfig(cfg)
	if err := rc.Validate(); err != nil {
		return nil, err
	}

	if c == nil {
		c = cache.Nop{}
	}

	o := options{snapshotRefresh: defaultSnapshotRefresh, snapshotTimeout: defaultSnapshotTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	return &Service{
		storage:  st,
		interest: interest.New(st),
		views:    views,
		cache:    c,
		snapshot: newSnapshotWriter(c, o.snapshotRefresh, o.snapshotTimeout),
		builder:  ranking.NewBuilder(rc),
		metrics:  m,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close дожидается фоновых записей снимка. Кэш не закрывает.
func (s *Service) Close() {
	s.snapshot.wait()
}

// RankingConfig накладывает настраиваемые параметры на ranking.DefaultConfig.
// Нулевые значения оставляют значения по умолчанию.
func RankingConfig(cfg config.RankingConfig) ranking.Config {
	rc := ranking.DefaultConfig()

	if cfg.EndingSoonWindow > 0 {
		rc.EndingSoonWindow = cfg.EndingSoonWindow
	}

	if cfg.NewArrivalsWindow > 0 {
		rc.NewArrivalsWindow = cfg.NewArrivalsWindow
	}

	if cfg.TopInterests > 0 {
		rc.TopInterests = cfg.TopInterests
	}

	return rc
}
