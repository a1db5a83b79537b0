// scheduler — периодическое обслуживание данных ленты по cron-расписанию.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// BoostExpirer снимает истёкшее продвижение. Реализуется service.Service.
type BoostExpirer interface {
	ExpireBoosts(ctx context.Context) (int64, error)
}

// Sweeper по расписанию снимает продвижение с объявлений, у которых истёк срок.
type Sweeper struct {
	expirer BoostExpirer
	spec    string
	timeout time.Duration
}

// NewSweeper проверяет расписание (стандартный cron или дескрипторы вида "@every 5m").
// timeout <= 0 — без дедлайна на один проход.
func NewSweeper(expirer BoostExpirer, spec string, timeout time.Duration) (*Sweeper, error) {
	const op = "scheduler.NewSweeper"

	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("%s: invalid spec %q: %w", op, spec, err)
	}

	return &Sweeper{expirer: expirer, spec: spec, timeout: timeout}, nil
}

// RunOnce выполняет один проход.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	const op = "scheduler.RunOnce"

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	n, err := s.expirer.ExpireBoosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// Run запускает расписание и блокируется до отмены ctx.
// Проходы не накладываются: если предыдущий ещё идёт, очередной пропускается.
// После отмены дожидается завершения текущего прохода.
func (s *Sweeper) Run(ctx context.Context) error {
	const op = "scheduler.Run"

	lg := log.From(ctx)
	cl := cronLogger{lg: lg}

	c := cron.New(cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	if _, err := c.AddFunc(s.spec, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("boost_sweeper_start", slog.String("op", op), slog.String("spec", s.spec))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	lg.Info("boost_sweeper_stop", slog.String("op", op))

	return nil
}

func (s *Sweeper) tick(ctx context.Context) {
	const op = "scheduler.tick"

	lg := log.From(ctx)

	n, err := s.RunOnce(ctx)
	if err != nil {
		lg.Warn("boost_sweep_error", slog.String("op", op), slog.String("err", err.Error()))
		return
	}

	if n > 0 {
		lg.Info("boosts_expired", slog.String("op", op), slog.Int64("count", n))
	}
}

// cronLogger — адаптер slog под cron.Logger.
type cronLogger struct {
	lg *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Debug("cron_"+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.lg.Error("cron_"+msg, append(keysAndValues, "err", err.Error())...)
}
