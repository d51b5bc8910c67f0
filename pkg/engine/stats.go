package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/termdrift/pkg/errors"
)

const metricsNamespace = "termdrift"

// Stats holds the engine's Prometheus metrics.
type Stats struct {
	Frames        prometheus.Counter
	FrameSeconds  prometheus.Histogram
	Refreshes     prometheus.Counter
	RefreshFailed prometheus.Counter
	Invalidations prometheus.Counter
	Errors        *prometheus.CounterVec

	timings *FrameTimingBuffer
}

// NewStats registers the engine metrics with reg.
func NewStats(reg prometheus.Registerer) *Stats {
	f := promauto.With(reg)
	return &Stats{
		Frames: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "frames_total",
			Help:      "Frames drawn and flushed",
		}),
		FrameSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "frame_duration_seconds",
			Help:      "Time spent drawing, rasterizing and flushing a frame",
			Buckets:   []float64{0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033, 0.066},
		}),
		Refreshes: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "core",
			Name:      "refreshes_total",
			Help:      "Completed component refreshes",
		}),
		RefreshFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "core",
			Name:      "refresh_failures_total",
			Help:      "Component refreshes that panicked",
		}),
		Invalidations: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "core",
			Name:      "invalidations_total",
			Help:      "Output changes made outside a refresh",
		}),
		Errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "errors_total",
			Help:      "Errors collected by the engine by kind",
		}, []string{"kind"}),
		timings: NewFrameTimingBuffer(120),
	}
}

func (s *Stats) frame(took time.Duration) {
	s.Frames.Inc()
	s.FrameSeconds.Observe(took.Seconds())
	s.timings.Add(took)
}

func (s *Stats) error(err error) {
	s.Errors.WithLabelValues(errors.KindOf(err).String()).Inc()
}

// Timings returns the recent frame durations.
func (s *Stats) Timings() *FrameTimingBuffer {
	return s.timings
}
