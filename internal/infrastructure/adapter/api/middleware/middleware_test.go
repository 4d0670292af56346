package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestSession(t *testing.T) {
	var seen string
	router := newTestRouter(Session(SessionOptions{MaxAge: time.Hour}))
	router.GET("/", func(c *gin.Context) {
		seen = SessionID(c)
		c.Status(http.StatusOK)
	})

	t.Run("mints a session when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(HeaderSessionID))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, DefaultSessionCookie, cookies[0].Name)
		assert.Equal(t, seen, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
	})

	t.Run("reuses the cookie", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: id})
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, id, seen)
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		header, cookie := uuid.NewString(), uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderSessionID, header)
		req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: cookie})
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, header, seen)
	})

	t.Run("replaces malformed ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderSessionID, "../../etc/passwd")
		router.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "../../etc/passwd", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	router := newTestRouter(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows the burst then rejects", func(t *testing.T) {
		limiter := NewRateLimiter(0.001, 2, time.Minute, logger.NewNoopLogger())
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))

		// other clients have their own bucket
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("disabled when rps is zero", func(t *testing.T) {
		limiter := NewRateLimiter(0, 1, time.Minute, logger.NewNoopLogger())
		for i := 0; i < 100; i++ {
			assert.True(t, limiter.Allow("10.0.0.1"))
		}
	})

	t.Run("middleware answers 429", func(t *testing.T) {
		limiter := NewRateLimiter(0.001, 1, time.Minute, logger.NewNoopLogger())
		router := newTestRouter(limiter.Middleware())
		router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"code":4290,"message":"Too many requests"}`, w.Body.String())
	})
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	router := newTestRouter(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(CORS())
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	// preflight needs a route for gin to run global middleware
	router.OPTIONS("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(200))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(422))
	assert.Equal(t, "Server Error", statusText(500))
}
