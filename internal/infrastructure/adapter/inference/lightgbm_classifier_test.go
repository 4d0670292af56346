package inference

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnsemble scores a vector with a fixed probability and records its input
type fakeEnsemble struct {
	features int
	score    float64
	lastSeen []float64
}

func (f *fakeEnsemble) PredictSingle(fvals []float64, nEstimators int) float64 {
	f.lastSeen = fvals
	return f.score
}

func (f *fakeEnsemble) NFeatures() int {
	return f.features
}

func TestLightGBMClassifierPredict(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		threshold float64
		expected  int
	}{
		{"high score is fraud", 0.93, 0.5, 1},
		{"low score is legitimate", 0.07, 0.5, 0},
		{"score equal to threshold is legitimate", 0.5, 0.5, 0},
		{"custom threshold", 0.35, 0.3, 1},
		{"invalid threshold falls back to default", 0.4, 1.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &fakeEnsemble{features: entity.FeatureCount, score: tt.score}
			c, err := NewLightGBMClassifier(model, "fake", tt.threshold, logger.NewNoopLogger())
			require.NoError(t, err)

			features := entity.FeatureVector{1, 2, 3, 4, 5, 6, 7, 8, 9}
			label, err := c.Predict(context.Background(), features)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, label)
			assert.Equal(t, features.Slice(), model.lastSeen)
		})
	}
}

func TestLightGBMClassifierFeatureMismatch(t *testing.T) {
	_, err := NewLightGBMClassifier(&fakeEnsemble{features: 7}, "fake", 0.5, logger.NewNoopLogger())

	assert.ErrorIs(t, err, errs.ErrArtifactLoad)
	assert.Contains(t, err.Error(), "expects 7 features")
}

func TestLightGBMClassifierCancelledContext(t *testing.T) {
	c, err := NewLightGBMClassifier(&fakeEnsemble{features: entity.FeatureCount}, "fake", 0.5, logger.NewNoopLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Predict(ctx, entity.FeatureVector{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "fake", c.Name())
}

func TestLoadLightGBMClassifierMissingFile(t *testing.T) {
	_, err := LoadLightGBMClassifier("/nonexistent/model.txt", 0.5, logger.NewNoopLogger())
	assert.ErrorIs(t, err, errs.ErrArtifactLoad)
}
