// recorder — запись просмотров и интереса зрителя.
//
// Запись не должна задерживать и ронять построение ленты: запросы кладут просмотр
// в ограниченную очередь (Enqueue), а пул воркеров (Run) пишет его в хранилище.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/petershoe2005/GatherU-sub000/internal/interest"
	"github.com/petershoe2005/GatherU-sub000/internal/metrics"
	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/internal/storage"
	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// Config — параметры очереди и воркеров.
type Config struct {
	QueueSize     int
	Workers       int
	RatePerSecond float64
	Burst         int
	WriteTimeout  time.Duration
}

type job struct {
	viewerID string
	listing  models.Listing
	at       time.Time
}

// Recorder пишет просмотры (одна запись на пару зритель/объявление) и увеличивает
// интерес к категории объявления на каждом просмотре, включая повторные.
type Recorder struct {
	views    storage.ViewStorage
	interest *interest.Model
	metrics  *metrics.Metrics
	cfg      Config
	limiter  *rate.Limiter
	now      func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan job
}

// New создаёт Recorder. Нулевые значения cfg заменяются безопасными минимумами.
func New(views storage.ViewStorage, model *interest.Model, m *metrics.Metrics, cfg Config) *Recorder {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return &Recorder{
		views:    views,
		interest: model,
		metrics:  m,
		cfg:      cfg,
		limiter:  rate.NewLimiter(limit, cfg.Burst),
		now:      func() time.Time { return time.Now().UTC() },
		queue:    make(chan job, cfg.QueueSize),
	}
}

func skip(viewerID string, l models.Listing) bool {
	return !(models.Viewer{ID: viewerID}).Authenticated() || l.IsPlaceholder()
}

// Record синхронно записывает просмотр и увеличивает интерес.
// Аноним и демо-объявления — no-op.
// Ошибка записи просмотра не мешает инкременту интереса: возвращаются обе.
func (r *Recorder) Record(ctx context.Context, viewerID string, l models.Listing) error {
	return r.record(ctx, viewerID, l, r.now())
}

func (r *Recorder) record(ctx context.Context, viewerID string, l models.Listing, at time.Time) error {
	const op = "recorder.Record"

	if skip(viewerID, l) {
		return nil
	}

	var errs []error

	view := models.ItemView{UserID: viewerID, ItemID: l.ID, Category: l.Category, ViewedAt: at}
	if err := r.views.UpsertView(ctx, view); err != nil {
		errs = append(errs, fmt.Errorf("%s: upsert view: %w", op, err))
	}

	if err := r.interest.Record(ctx, viewerID, l.Category, interest.DefaultDelta); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", op, err))
	}

	return errors.Join(errs...)
}

// Enqueue ставит просмотр в очередь без блокировки.
// Возвращает false, если просмотр не принят: no-op случай, очередь заполнена или закрыта.
// ctx используется только для логирования.
func (r *Recorder) Enqueue(ctx context.Context, viewerID string, l models.Listing) bool {
	const op = "recorder.Enqueue"

	if skip(viewerID, l) {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lg := log.From(ctx)

	if r.closed {
		r.metrics.ViewDropped()
		lg.Warn("view_dropped",
			slog.String("op", op),
			slog.String("reason", "closed"),
			slog.String("item_id", l.ID),
		)
		return false
	}

	select {
	case r.queue <- job{viewerID: viewerID, listing: l, at: r.now()}:
		r.metrics.ViewEnqueued(len(r.queue))
		return true
	default:
		r.metrics.ViewDropped()
		lg.Warn("view_dropped",
			slog.String("op", op),
			slog.String("reason", "queue_full"),
			slog.String("item_id", l.ID),
			slog.Int("queue_size", r.cfg.QueueSize),
		)
		return false
	}
}

// Run запускает воркеров и блокируется до их завершения.
//
// Особенности:
//   - после Close воркеры дописывают то, что уже в очереди, и выходят;
//   - отмена ctx останавливает воркеров сразу, остаток очереди теряется;
//   - ошибки записи логируются и считаются, наружу не выходят.
func (r *Recorder) Run(ctx context.Context) error {
	const op = "recorder.Run"

	lg := log.From(ctx)
	lg.Info("recorder_start",
		slog.String("op", op),
		slog.Int("workers", r.cfg.Workers),
		slog.Int("queue_size", r.cfg.QueueSize),
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Workers; i++ {
		g.Go(func() error {
			r.worker(gctx)
			return nil
		})
	}

	err := g.Wait()
	lg.Info("recorder_stop", slog.String("op", op))

	return err
}

func (r *Recorder) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-r.queue:
			if !ok {
				return
			}
			r.process(ctx, j)
		}
	}
}

func (r *Recorder) process(ctx context.Context, j job) {
	const op = "recorder.process"

	lg := log.From(ctx)

	if err := r.limiter.Wait(ctx); err != nil {
		r.metrics.ViewRecorded(err, len(r.queue))
		return
	}

	writeCtx := ctx
	if r.cfg.WriteTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, r.cfg.WriteTimeout)
		defer cancel()
	}

	err := r.record(writeCtx, j.viewerID, j.listing, j.at)
	r.metrics.ViewRecorded(err, len(r.queue))

	if err != nil {
		lg.Warn("view_record_failed",
			slog.String("op", op),
			slog.String("item_id", j.listing.ID),
			slog.String("err", err.Error()),
		)
		return
	}

	lg.Debug("view_recorded",
		slog.String("op", op),
		slog.String("item_id", j.listing.ID),
		slog.String("category", string(j.listing.Category)),
	)
}

// Close прекращает приём новых просмотров. Повторный вызов безопасен.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	r.closed = true
	close(r.queue)
}
