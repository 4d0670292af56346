package persistence

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// Vocabulary maps each categorical column to its value -> code table
type Vocabulary map[entity.CategoricalColumn]map[string]int

// EncodingRepository loads the trained categorical vocabularies
type EncodingRepository interface {
	LoadVocabulary(ctx context.Context) (Vocabulary, error)
}
