package metrics

import (
	"strconv"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric the service exports
const Namespace = "fraud_screening"

// PrometheusMetrics implements core.PredictionMetrics
type PrometheusMetrics struct {
	verdicts       *prometheus.CounterVec
	latency        prometheus.Histogram
	rejections     *prometheus.CounterVec
	unseenCategory *prometheus.CounterVec
}

// NewPrometheusMetrics registers the prediction metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		verdicts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "predictions_total",
				Help:      "Completed fraud checks by verdict",
			},
			[]string{"verdict"},
		),
		latency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "inference_duration_seconds",
				Help:      "Classifier latency per fraud check",
				Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
			},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rejected_submissions_total",
				Help:      "Submissions rejected before inference, by error code",
			},
			[]string{"code"},
		),
		unseenCategory: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "unseen_category_total",
				Help:      "Categorical values encoded with the unseen sentinel",
			},
			[]string{"column"},
		),
	}
}

// ObserveVerdict counts a completed check and records the classifier latency
func (m *PrometheusMetrics) ObserveVerdict(verdict entity.Verdict, latency core.Duration) {
	m.verdicts.WithLabelValues(string(verdict)).Inc()
	m.latency.Observe(latency.Seconds())
}

// ObserveRejection counts a submission rejected with the given error code
func (m *PrometheusMetrics) ObserveRejection(code int) {
	m.rejections.WithLabelValues(strconv.Itoa(code)).Inc()
}

// ObserveUnseenCategory counts a value of column that fell back to the sentinel
func (m *PrometheusMetrics) ObserveUnseenCategory(column entity.CategoricalColumn) {
	m.unseenCategory.WithLabelValues(string(column)).Inc()
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

// ObserveVerdict does nothing
func (NoopMetrics) ObserveVerdict(entity.Verdict, core.Duration) {}

// ObserveRejection does nothing
func (NoopMetrics) ObserveRejection(int) {}

// ObserveUnseenCategory does nothing
func (NoopMetrics) ObserveUnseenCategory(entity.CategoricalColumn) {}

// NewSessionGauge exports the number of live sessions reported by count
func NewSessionGauge(reg prometheus.Registerer, count func() int) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_sessions",
			Help:      "Sessions holding a challenge in the in-memory store",
		},
		func() float64 { return float64(count()) },
	)
}
