package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dobaksandor13-ship-it/George-swimm-web/internal/newsportal"
)

const namespace = "newsboard"

// Metrics holds all Prometheus metrics for the news board
type Metrics struct {
	// Admin mutation metrics
	Mutations *prometheus.CounterVec

	// Live snapshot metrics
	Subscribers     prometheus.Gauge
	Broadcasts      prometheus.Counter
	RefreshErrors   prometheus.Counter
	SnapshotSize    prometheus.Gauge
	RefreshDuration prometheus.Histogram
}

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Admin mutations by operation and result",
		}, []string{"op", "result"}),
		Subscribers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_subscribers",
			Help:      "Currently connected live viewers",
		}),
		Broadcasts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_broadcasts_total",
			Help:      "Snapshots fanned out to live viewers",
		}),
		RefreshErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "live_refresh_errors_total",
			Help:      "Failed snapshot reads",
		}),
		SnapshotSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_snapshot_items",
			Help:      "Number of news in the current snapshot",
		}),
		RefreshDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "live_refresh_duration_seconds",
			Help:      "Time spent reading a snapshot from the store",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObserveMutation implements newsportal.MutationObserver.
func (m *Metrics) ObserveMutation(op string, err error) {
	m.Mutations.WithLabelValues(op, mutationResult(err)).Inc()
}

func mutationResult(err error) string {
	var verr *newsportal.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, newsportal.ErrForbidden):
		return "forbidden"
	case errors.Is(err, newsportal.ErrNotFound):
		return "not_found"
	case errors.As(err, &verr):
		return "invalid"
	default:
		return "error"
	}
}
