package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/inference"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/usecase/challenge"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/usecase/prediction"

	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/database/migration"
	inferenceAdapter "github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/inference"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/session"
	timeProvider "github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	healthChecks := map[string]handler.HealthCheck{}

	// Model artifacts; the service cannot answer without them
	classifier, err := inferenceAdapter.LoadLightGBMClassifier(cfg.Inference.ModelPath, cfg.Inference.Threshold, appLogger)
	if err != nil {
		fatal(appLogger, "Failed to load classifier", err)
	}

	var encoder inference.CategoricalEncoder
	if cfg.UsesDatabase() {
		dbManager := database.NewManager(cfg.DatabaseConnection(), appLogger, tp)
		db, err := dbManager.Connect(ctx)
		if err != nil {
			fatal(appLogger, "Failed to connect to database", err)
		}
		defer dbManager.Close()

		if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(ctx); err != nil {
			fatal(appLogger, "Failed to run migrations", err)
		}
		if err := dbManager.RegisterMetrics(registry); err != nil {
			appLogger.Warn("Failed to register database metrics", map[string]any{"error": err.Error()})
		}
		healthChecks["database"] = dbManager.Ping

		encoder, err = inferenceAdapter.LoadLabelEncoderFromRepository(ctx, repository.NewEncodingRepository(dbManager, appLogger))
		if err != nil {
			fatal(appLogger, "Failed to load label encoder from database", err)
		}
	} else {
		encoder, err = inferenceAdapter.LoadLabelEncoderFile(cfg.Inference.EncoderPath)
		if err != nil {
			fatal(appLogger, "Failed to load label encoder", err)
		}
	}

	// Session store
	var store persistence.ChallengeStore
	switch cfg.Session.Store {
	case "redis":
		client, closeRedis, err := session.NewRedisClient(ctx, session.RedisConfig{
			Addr:        cfg.Session.Redis.Addr,
			Username:    cfg.Session.Redis.Username,
			Password:    cfg.Session.Redis.Password,
			DB:          cfg.Session.Redis.DB,
			UseTLS:      cfg.Session.Redis.UseTLS,
			DialTimeout: cfg.Session.Redis.DialTimeout,
			PoolSize:    cfg.Session.Redis.PoolSize,
		})
		if err != nil {
			fatal(appLogger, "Failed to connect to redis", err)
		}
		defer closeRedis()

		store = session.NewRedisStore(client, cfg.Session.Redis.KeyPrefix, cfg.Session.TTL)
		healthChecks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	default:
		memoryStore := session.NewMemoryStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
		metrics.NewSessionGauge(registry, memoryStore.Len)
		store = memoryStore
	}

	// Use cases
	predictionMetrics := metrics.NewPrometheusMetrics(registry)
	challengeService := challenge.NewChallengeService(store, random.NewMathRandom(), appLogger)
	predictionService := prediction.NewPredictionService(
		challengeService,
		encoder,
		inferenceAdapter.NewGeodesic(),
		classifier,
		predictionMetrics,
		tp,
		appLogger,
	)

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, metrics.NewHTTPMetrics(registry).Middleware())

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit.RequestsPerSecond > 0 {
		limiter = middleware.NewRateLimiter(
			cfg.Server.RateLimit.RequestsPerSecond,
			cfg.Server.RateLimit.Burst,
			cfg.Server.RateLimit.IdleTimeout,
			appLogger,
		)
	}

	routes.SetupRoutes(router, routes.Handlers{
		Form:       handler.NewFormHandler(predictionService, challengeService, appLogger),
		Prediction: handler.NewPredictionHandler(predictionService, challengeService, appLogger),
		Health:     handler.NewHealthHandler(healthChecks),
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, middleware.SessionOptions{
		CookieName: cfg.Session.CookieName,
		MaxAge:     cfg.Session.TTL,
		Secure:     cfg.Session.SecureCookie,
	}, limiter)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"session_store": cfg.Session.Store,
			"encoder":       cfg.Inference.EncoderSource,
			"model":         classifier.Name(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal(appLogger, "Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

func fatal(appLogger coreport.Logger, msg string, err error) {
	appLogger.Error(msg, map[string]any{"error": err.Error()})
	_ = appLogger.Flush()
	os.Exit(1)
}

// validateConfig checks what struct validation cannot express: files that must
// exist and settings that depend on each other
func validateConfig(cfg *config.Config) error {
	var problems []string

	if _, err := os.Stat(cfg.Inference.ModelPath); err != nil {
		problems = append(problems, "inference.modelPath: "+err.Error())
	}

	if cfg.UsesDatabase() {
		if err := cfg.DatabaseConnection().Validate(); err != nil {
			problems = append(problems, "database: "+err.Error())
		}
	} else if _, err := os.Stat(cfg.Inference.EncoderPath); err != nil {
		problems = append(problems, "inference.encoderPath: "+err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.UsesDatabase() && cfg.Database.Driver == database.DriverPostgres {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
			}
		}
		if !cfg.Session.SecureCookie {
			warnings = append(warnings, "session.secureCookie should be enabled in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
