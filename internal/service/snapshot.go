package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/petershoe2005/GatherU-sub000/internal/cache"
	"github.com/petershoe2005/GatherU-sub000/internal/models"
	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

const (
	defaultSnapshotRefresh = 30 * time.Second
	defaultSnapshotTimeout = 2 * time.Second
)

// snapshotWriter обновляет снимок объявлений в кэше в фоне.
// Одновременно идёт не больше одной записи; после успешной следующая
// начнётся не раньше чем через interval.
type snapshotWriter struct {
	cache    cache.ListingCache
	interval time.Duration
	timeout  time.Duration

	mu       sync.Mutex
	inFlight bool
	last     time.Time

	wg sync.WaitGroup
}

func newSnapshotWriter(c cache.ListingCache, interval, timeout time.Duration) *snapshotWriter {
	if interval < 0 {
		interval = 0
	}
	if timeout <= 0 {
		timeout = defaultSnapshotTimeout
	}

	return &snapshotWriter{cache: c, interval: interval, timeout: timeout}
}

// refresh запускает запись снимка, если она сейчас уместна, и сразу возвращается.
// Возвращает true, если запись запущена.
func (w *snapshotWriter) refresh(ctx context.Context, listings []models.Listing, now time.Time) bool {
	w.mu.Lock()
	if w.inFlight || (!w.last.IsZero() && now.Sub(w.last) < w.interval) {
		w.mu.Unlock()
		return false
	}
	w.inFlight = true
	w.mu.Unlock()

	snapshot := append([]models.Listing(nil), listings...)
	lg := log.From(ctx)
	bg := context.WithoutCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		sctx, cancel := context.WithTimeout(bg, w.timeout)
		defer cancel()

		err := w.cache.Store(sctx, snapshot, now)

		w.mu.Lock()
		w.inFlight = false
		if err == nil {
			w.last = now
		}
		w.mu.Unlock()

		if err != nil {
			lg.Warn("snapshot_store_failed", slog.String("err", err.Error()))
			return
		}
		lg.Debug("snapshot_stored", slog.Int("listings", len(snapshot)))
	}()

	return true
}

// wait дожидается завершения запущенных записей.
func (w *snapshotWriter) wait() {
	w.wg.Wait()
}
