package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/database/migration"
	inferenceAdapter "github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/inference"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/config"
)

// main imports the label encoder class lists from a YAML file into the
// category_encodings table, replacing the stored classes of each column in the file.
func main() {
	file := flag.String("file", "", "YAML class lists to import (defaults to inference.encoderPath)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer appLogger.Flush()

	path := *file
	if path == "" {
		path = cfg.Inference.EncoderPath
	}

	vocab, err := inferenceAdapter.LoadVocabularyFile(path)
	if err != nil {
		appLogger.Error("Failed to read class lists", map[string]any{"path": path, "error": err.Error()})
		os.Exit(1)
	}

	ctx := context.Background()
	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(cfg.DatabaseConnection(), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	if err := repository.NewEncodingRepository(dbManager, appLogger).SaveVocabulary(ctx, vocab); err != nil {
		appLogger.Error("Failed to import class lists", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	appLogger.Info("Imported class lists", map[string]any{"path": path, "columns": len(vocab)})
}
