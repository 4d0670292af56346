package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/web"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	Form       *handler.FormHandler
	Prediction *handler.PredictionHandler
	Health     *handler.HealthHandler
	Metrics    http.Handler
}

// SetupRoutes configures all the routes for the API.
// Submissions are throttled by limiter when it is non-nil.
func SetupRoutes(router *gin.Engine, h Handlers, session middleware.SessionOptions, limiter *middleware.RateLimiter) {
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	throttled := func(next gin.HandlerFunc) []gin.HandlerFunc {
		if limiter == nil {
			return []gin.HandlerFunc{next}
		}
		return []gin.HandlerFunc{limiter.Middleware(), next}
	}

	// Session-scoped routes
	sessioned := router.Group("/", middleware.Session(session))
	{
		sessioned.GET("/", h.Form.Show)
		sessioned.POST("/", throttled(h.Form.Submit)...)

		api := sessioned.Group("/api/v1")
		{
			// GET /api/v1/challenge
			api.GET("/challenge", h.Prediction.GetChallenge)

			// POST /api/v1/predictions
			api.POST("/predictions", throttled(h.Prediction.Predict)...)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, extra ...gin.HandlerFunc) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(extra...)
}
