package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// EncodingRepository implements persistence.EncodingRepository on the category_encodings table.
// Every query runs under the manager's query timeout.
type EncodingRepository struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewEncodingRepository creates a new encoding repository on a connected manager
func NewEncodingRepository(dbManager *database.Manager, logger coreport.Logger) *EncodingRepository {
	return &EncodingRepository{
		dbManager: dbManager,
		logger:    logger,
	}
}

// LoadVocabulary reads every stored class, grouped by column
func (r *EncodingRepository) LoadVocabulary(ctx context.Context) (persistence.Vocabulary, error) {
	var rows []model.CategoryEncoding

	err := database.RetryOnTransientError(ctx, database.DefaultRetryConfig(), func() error {
		queryCtx, cancel := r.dbManager.WithTimeout(ctx)
		defer cancel()
		return r.dbManager.DB().WithContext(queryCtx).Order("column_name, code").Find(&rows).Error
	}, r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load category encodings: %w", err)
	}

	vocab := make(persistence.Vocabulary)
	for _, row := range rows {
		column := entity.CategoricalColumn(row.ColumnName)
		if vocab[column] == nil {
			vocab[column] = make(map[string]int)
		}
		vocab[column][row.Value] = row.Code
	}

	r.logger.Info("Loaded category encodings", map[string]any{
		"rows":    len(rows),
		"columns": len(vocab),
	})
	return vocab, nil
}

// SaveVocabulary replaces the stored classes of every column in vocab, in one transaction
func (r *EncodingRepository) SaveVocabulary(ctx context.Context, vocab persistence.Vocabulary) error {
	var rows []model.CategoryEncoding

	columns := make([]entity.CategoricalColumn, 0, len(vocab))
	for column := range vocab {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	for _, column := range columns {
		for value, code := range vocab[column] {
			rows = append(rows, model.CategoryEncoding{
				ColumnName: string(column),
				Value:      value,
				Code:       code,
			})
		}
	}
	if len(columns) == 0 {
		return nil
	}

	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = string(column)
	}

	queryCtx, cancel := r.dbManager.WithTimeout(ctx)
	defer cancel()

	err := r.dbManager.DB().WithContext(queryCtx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("column_name IN ?", names).Delete(&model.CategoryEncoding{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(rows, 500).Error
	})
	if Classify(err) == DuplicateKeyError {
		return fmt.Errorf("%w: %v", ErrDuplicateEncoding, err)
	}
	if err != nil {
		return fmt.Errorf("failed to save category encodings: %w", err)
	}

	r.logger.Info("Saved category encodings", map[string]any{"rows": len(rows)})
	return nil
}
