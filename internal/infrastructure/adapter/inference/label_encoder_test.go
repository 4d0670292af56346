package inference

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/persistence"
	mpers "github.com/amirhossein-jamali/fraud-screening/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const encoderYAML = `
merchant:
  - fraud_Abbott-Rogahn
  - fraud_Abbott-Steuber
  - Amazon
category: [entertainment, food_dining, grocery]
gender: [Female, Male]
`

func TestParseLabelEncoder(t *testing.T) {
	enc, err := ParseLabelEncoder([]byte(encoderYAML))
	require.NoError(t, err)

	tests := []struct {
		column entity.CategoricalColumn
		value  string
		code   int
		ok     bool
	}{
		{entity.ColumnMerchant, "fraud_Abbott-Rogahn", 0, true},
		{entity.ColumnMerchant, "Amazon", 2, true},
		{entity.ColumnCategory, "grocery", 2, true},
		{entity.ColumnGender, "Male", 1, true},
		{entity.ColumnMerchant, "Brand New Shop", 0, false},
		{entity.ColumnCategory, "", 0, false},
		{entity.CategoricalColumn("zip"), "10001", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.column)+"/"+tt.value, func(t *testing.T) {
			code, ok := enc.Encode(tt.column, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}

	assert.Equal(t, 3, enc.Size(entity.ColumnMerchant))
}

func TestParseLabelEncoderErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "merchant: [unclosed"},
		{"missing gender column", "merchant: [a]\ncategory: [b]\n"},
		{"duplicate class", "merchant: [a, a]\ncategory: [b]\ngender: [F, M]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLabelEncoder([]byte(tt.data))
			assert.ErrorIs(t, err, errs.ErrArtifactLoad)
		})
	}
}

func TestLoadLabelEncoderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_encoder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(encoderYAML), 0o600))

	enc, err := LoadLabelEncoderFile(path)
	require.NoError(t, err)

	code, ok := enc.Encode(entity.ColumnCategory, "food_dining")
	assert.True(t, ok)
	assert.Equal(t, 1, code)

	_, err = LoadLabelEncoderFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, errs.ErrArtifactLoad)
}

func TestLoadLabelEncoderFromRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mpers.MockEncodingRepository)
		repo.On("LoadVocabulary", ctx).Return(persistence.Vocabulary{
			entity.ColumnMerchant: {"Amazon": 5},
			entity.ColumnCategory: {"grocery": 1},
			entity.ColumnGender:   {"Male": 1, "Female": 0},
		}, nil)

		enc, err := LoadLabelEncoderFromRepository(ctx, repo)
		require.NoError(t, err)

		code, ok := enc.Encode(entity.ColumnMerchant, "Amazon")
		assert.True(t, ok)
		assert.Equal(t, 5, code)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(mpers.MockEncodingRepository)
		repo.On("LoadVocabulary", ctx).Return(nil, errors.New("connection refused"))

		_, err := LoadLabelEncoderFromRepository(ctx, repo)
		assert.ErrorIs(t, err, errs.ErrArtifactLoad)
	})
}
