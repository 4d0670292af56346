package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/metrics"
	ucmocks "github.com/amirhossein-jamali/fraud-screening/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter, checks map[string]handler.HealthCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	predictions := new(ucmocks.MockPredictionUseCase)
	challenges := new(ucmocks.MockChallengeUseCase)
	challenges.On("Current", mock.Anything, mock.Anything).Return(entity.Challenge{Num1: 1, Num2: 2}, nil).Maybe()

	reg := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	router := gin.New()
	SetupMiddlewares(router, log, httpMetrics.Middleware())
	SetupRoutes(router, Handlers{
		Form:       handler.NewFormHandler(predictions, challenges, log),
		Prediction: handler.NewPredictionHandler(predictions, challenges, log),
		Health:     handler.NewHealthHandler(checks),
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}, middleware.SessionOptions{}, limiter)
	return router
}

func TestRoutesServeForm(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "What is 1 + 2?")
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderSessionID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRoutesChallenge(t *testing.T) {
	router := newTestRouter(t, nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"question":"What is 1 + 2?"`)
}

func TestRoutesThrottleSubmissions(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.001, 1, time.Minute, logger.NewNoopLogger())
	router := newTestRouter(t, limiter, nil)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusTooManyRequests, post())

	// reads are never throttled
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/challenge", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutesHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router := newTestRouter(t, nil, map[string]handler.HealthCheck{
			"sessions": func(context.Context) error { return nil },
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","dependencies":{"sessions":"ok"}}`, w.Body.String())
	})

	t.Run("degraded", func(t *testing.T) {
		router := newTestRouter(t, nil, map[string]handler.HealthCheck{
			"sessions": func(context.Context) error { return errors.New("connection refused") },
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestRoutesMetrics(t *testing.T) {
	router := newTestRouter(t, nil, nil)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `fraud_screening_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
