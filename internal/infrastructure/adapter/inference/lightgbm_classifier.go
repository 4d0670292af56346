package inference

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/dmitryikh/leaves"
)

// DefaultThreshold is the probability above which a transaction is labelled fraud
const DefaultThreshold = 0.5

// ensemble is the part of *leaves.Ensemble the classifier uses
type ensemble interface {
	PredictSingle(fvals []float64, nEstimators int) float64
	NFeatures() int
}

// LightGBMClassifier evaluates a LightGBM binary model natively
type LightGBMClassifier struct {
	model     ensemble
	name      string
	threshold float64
	logger    coreport.Logger
}

// LoadLightGBMClassifier reads a LightGBM text model from path.
// The sigmoid transformation is loaded so predictions are probabilities.
func LoadLightGBMClassifier(path string, threshold float64, logger coreport.Logger) (*LightGBMClassifier, error) {
	model, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrArtifactLoad, path, err)
	}

	c, err := NewLightGBMClassifier(model, "lightgbm:"+path, threshold, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Classifier loaded", map[string]any{
		"path":       path,
		"features":   model.NFeatures(),
		"estimators": model.NEstimators(),
		"threshold":  c.threshold,
	})
	return c, nil
}

// NewLightGBMClassifier wraps an already loaded ensemble
func NewLightGBMClassifier(model ensemble, name string, threshold float64, logger coreport.Logger) (*LightGBMClassifier, error) {
	if model.NFeatures() != entity.FeatureCount {
		return nil, fmt.Errorf("%w: model expects %d features, feature vector has %d",
			errs.ErrArtifactLoad, model.NFeatures(), entity.FeatureCount)
	}
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}

	return &LightGBMClassifier{
		model:     model,
		name:      name,
		threshold: threshold,
		logger:    logger,
	}, nil
}

// Predict returns 1 when the fraud probability exceeds the threshold, 0 otherwise
func (c *LightGBMClassifier) Predict(ctx context.Context, features entity.FeatureVector) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	p := c.model.PredictSingle(features.Slice(), 0)

	c.logger.Debug("Model score", map[string]any{
		"model": c.name,
		"score": p,
	})

	if p > c.threshold {
		return entity.FraudLabel, nil
	}
	return 0, nil
}

// Name identifies the model
func (c *LightGBMClassifier) Name() string {
	return c.name
}
