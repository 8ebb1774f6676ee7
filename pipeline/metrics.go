package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by Run.
// A nil *Metrics records nothing.
type Metrics struct {
	stageDuration     *prometheus.HistogramVec
	stageCells        *prometheus.CounterVec
	invalidPourPoints prometheus.Counter
}

// NewMetrics creates the pipeline collectors and registers them with reg.
// It returns nil metrics when reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil // metrics disabled
	}

	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "terrain",
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4min
		}, []string{"stage"}),

		stageCells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "terrain",
			Name:      "stage_cells_total",
			Help:      "Total number of cells processed per stage",
		}, []string{"stage"}),

		invalidPourPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "terrain",
			Name:      "invalid_pour_points_total",
			Help:      "Total number of pour points that could not be placed on the grid",
		}),
	}

	for _, c := range []prometheus.Collector{m.stageDuration, m.stageCells, m.invalidPourPoints} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeStage(stage string, elapsed time.Duration, cells int) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
	m.stageCells.WithLabelValues(stage).Add(float64(cells))
}

func (m *Metrics) invalidPourPoint() {
	if m == nil {
		return
	}
	m.invalidPourPoints.Inc()
}
