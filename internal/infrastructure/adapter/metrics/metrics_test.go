package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.ObserveVerdict(entity.VerdictFraudulent, core.Duration(2*time.Millisecond))
	m.ObserveVerdict(entity.VerdictLegitimate, core.Duration(time.Millisecond))
	m.ObserveVerdict(entity.VerdictLegitimate, core.Duration(time.Millisecond))
	m.ObserveRejection(4001)
	m.ObserveUnseenCategory(entity.ColumnMerchant)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.verdicts.WithLabelValues("fraudulent")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.verdicts.WithLabelValues("legitimate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("4001")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unseenCategory.WithLabelValues("merchant")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestPrometheusMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}

func TestNoopMetrics(t *testing.T) {
	var m core.PredictionMetrics = NoopMetrics{}
	assert.NotPanics(t, func() {
		m.ObserveVerdict(entity.VerdictFraudulent, 0)
		m.ObserveRejection(4002)
		m.ObserveUnseenCategory(entity.ColumnGender)
	})
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ping", "/ping", "/missing"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.total.WithLabelValues("GET", "/ping", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.total.WithLabelValues("GET", "unmatched", "404")))
}

func TestSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	live := 3
	gauge := NewSessionGauge(reg, func() int { return live })

	assert.Equal(t, 3.0, testutil.ToFloat64(gauge))

	live = 0
	assert.Equal(t, 0.0, testutil.ToFloat64(gauge))
	assert.Equal(t, 1, testutil.CollectAndCount(gauge, "fraud_screening_active_sessions"))
}
