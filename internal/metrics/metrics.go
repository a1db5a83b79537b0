// metrics — Prometheus-коллекторы feed-service.
// Все методы безопасны для nil-получателя: компоненты можно собирать без метрик.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "feed"

// Исходы построения ленты.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
)

// Исходы записи просмотра.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics — набор коллекторов сервиса.
type Metrics struct {
	feedBuilds     *prometheus.CounterVec
	feedUnfiltered prometheus.Counter
	feedDuration   prometheus.Histogram
	sectionItems   *prometheus.HistogramVec

	viewsEnqueued prometheus.Counter
	viewsDropped  prometheus.Counter
	viewsRecorded *prometheus.CounterVec
	queueDepth    prometheus.Gauge

	boostsExpired prometheus.Counter
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		feedBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Feed builds by outcome.",
		}, []string{"outcome"}),
		feedUnfiltered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unfiltered_total",
			Help:      "Feed builds where eligibility produced nothing and the full set was shown.",
		}),
		feedDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time spent building a feed, storage reads included.",
			Buckets:   prometheus.DefBuckets,
		}),
		sectionItems: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "section_items",
			Help:      "Number of listings per emitted section.",
			Buckets:   []float64{0, 1, 2, 4, 6, 8, 16, 32, 64, 128, 256},
		}, []string{"section"}),
		viewsEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recorder",
			Name:      "enqueued_total",
			Help:      "Item views accepted into the recorder queue.",
		}),
		viewsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recorder",
			Name:      "dropped_total",
			Help:      "Item views dropped because the recorder queue was full or closed.",
		}),
		viewsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "recorder",
			Name:      "recorded_total",
			Help:      "Item view writes by result.",
		}, []string{"result"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "recorder",
			Name:      "queue_depth",
			Help:      "Item views waiting in the recorder queue.",
		}),
		boostsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "boosts",
			Name:      "expired_total",
			Help:      "Listings whose boost was cleared by the sweeper.",
		}),
	}

	reg.MustRegister(
		m.feedBuilds,
		m.feedUnfiltered,
		m.feedDuration,
		m.sectionItems,
		m.viewsEnqueued,
		m.viewsDropped,
		m.viewsRecorded,
		m.queueDepth,
		m.boostsExpired,
	)

	return m
}

// ObserveFeed фиксирует одно построение ленты.
func (m *Metrics) ObserveFeed(degraded, unfiltered bool, took time.Duration, sections map[string]int) {
	if m == nil {
		return
	}

	outcome := OutcomeOK
	if degraded {
		outcome = OutcomeDegraded
	}
	m.feedBuilds.WithLabelValues(outcome).Inc()

	if unfiltered {
		m.feedUnfiltered.Inc()
	}

	m.feedDuration.Observe(took.Seconds())

	for id, n := range sections {
		m.sectionItems.WithLabelValues(id).Observe(float64(n))
	}
}

// ViewEnqueued — просмотр принят в очередь; depth — текущая длина очереди.
func (m *Metrics) ViewEnqueued(depth int) {
	if m == nil {
		return
	}

	m.viewsEnqueued.Inc()
	m.queueDepth.Set(float64(depth))
}

// ViewDropped — просмотр отброшен.
func (m *Metrics) ViewDropped() {
	if m == nil {
		return
	}

	m.viewsDropped.Inc()
}

// ViewRecorded — результат записи просмотра; depth — длина очереди после выборки.
func (m *Metrics) ViewRecorded(err error, depth int) {
	if m == nil {
		return
	}

	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.viewsRecorded.WithLabelValues(result).Inc()
	m.queueDepth.Set(float64(depth))
}

// BoostsExpired — число объявлений, у которых снято продвижение.
func (m *Metrics) BoostsExpired(n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.boostsExpired.Add(float64(n))
}
