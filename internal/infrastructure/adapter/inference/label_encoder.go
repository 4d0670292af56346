package inference

import (
	"context"
	"fmt"
	"os"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
	"gopkg.in/yaml.v3"
)

// LabelEncoder looks up trained codes from an in-memory vocabulary.
// It is read-only after construction and safe for concurrent use.
type LabelEncoder struct {
	vocabulary persistence.Vocabulary
}

// NewLabelEncoder builds an encoder over vocab; every categorical column must be present
func NewLabelEncoder(vocab persistence.Vocabulary) (*LabelEncoder, error) {
	for _, column := range entity.CategoricalColumns {
		if _, ok := vocab[column]; !ok {
			return nil, fmt.Errorf("%w: vocabulary has no column %q", errs.ErrArtifactLoad, column)
		}
	}
	return &LabelEncoder{vocabulary: vocab}, nil
}

// Encode returns the trained code of value, or false when the value was never seen
func (e *LabelEncoder) Encode(column entity.CategoricalColumn, value string) (int, bool) {
	codes, ok := e.vocabulary[column]
	if !ok {
		return 0, false
	}
	code, ok := codes[value]
	return code, ok
}

// Size returns the number of known values of column
func (e *LabelEncoder) Size(column entity.CategoricalColumn) int {
	return len(e.vocabulary[column])
}

// LoadLabelEncoderFile reads a YAML file mapping each column to its class list.
// A value's code is its position in the list, as produced by the training encoder.
//
//	merchant: [fraud_Abbott-Rogahn, fraud_Abbott-Steuber]
//	category: [entertainment, food_dining]
//	gender: [Female, Male]
func LoadLabelEncoderFile(path string) (*LabelEncoder, error) {
	vocab, err := LoadVocabularyFile(path)
	if err != nil {
		return nil, err
	}
	return NewLabelEncoder(vocab)
}

// ParseLabelEncoder decodes the YAML class lists of LoadLabelEncoderFile
func ParseLabelEncoder(data []byte) (*LabelEncoder, error) {
	vocab, err := ParseVocabulary(data)
	if err != nil {
		return nil, err
	}
	return NewLabelEncoder(vocab)
}

// LoadVocabularyFile reads the class lists of LoadLabelEncoderFile without building an encoder
func LoadVocabularyFile(path string) (persistence.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrArtifactLoad, err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes YAML class lists into value -> position tables
func ParseVocabulary(data []byte) (persistence.Vocabulary, error) {
	var classes map[string][]string
	if err := yaml.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("%w: invalid encoder file: %v", errs.ErrArtifactLoad, err)
	}

	vocab := make(persistence.Vocabulary, len(classes))
	for column, values := range classes {
		codes := make(map[string]int, len(values))
		for i, v := range values {
			if _, dup := codes[v]; dup {
				return nil, fmt.Errorf("%w: duplicate class %q in column %q", errs.ErrArtifactLoad, v, column)
			}
			codes[v] = i
		}
		vocab[entity.CategoricalColumn(column)] = codes
	}
	return vocab, nil
}

// LoadLabelEncoderFromRepository builds the encoder from a stored vocabulary
func LoadLabelEncoderFromRepository(ctx context.Context, repo persistence.EncodingRepository) (*LabelEncoder, error) {
	vocab, err := repo.LoadVocabulary(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrArtifactLoad, err)
	}
	return NewLabelEncoder(vocab)
}
