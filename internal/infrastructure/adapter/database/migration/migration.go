package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// step is one schema version and the change that reaches it
type step struct {
	version string
	details string
	apply   func(ctx context.Context, db *gorm.DB) error
}

// steps are applied in order; a database at version N runs every step after N
var steps = []step{
	{
		version: "1.0.0",
		details: "create category_encodings",
		apply: func(ctx context.Context, db *gorm.DB) error {
			return db.WithContext(ctx).AutoMigrate(&model.CategoryEncoding{})
		},
	},
}

// CurrentSchemaVersion is the version reached after every step
func CurrentSchemaVersion() string {
	return steps[len(steps)-1].version
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion(),
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to check current schema version: %w", err)
	}

	pending := pendingSteps(currentVersion)
	if len(pending) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"from":    currentVersion,
			"to":      s.version,
			"details": s.details,
		})

		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.apply(ctx, tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   s.version,
				AppliedAt: m.timeProvider.Now(),
				Details:   s.details,
			}).Error
		})
		if err != nil {
			return fmt.Errorf("migration to %s failed: %w", s.version, err)
		}
		currentVersion = s.version
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": currentVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, empty for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func pendingSteps(current string) []step {
	if current == "" {
		return steps
	}
	for i, s := range steps {
		if s.version == current {
			return steps[i+1:]
		}
	}
	// unknown version, re-apply everything; each step is idempotent
	return steps
}
