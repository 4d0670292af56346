package inference

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// Classifier is the pre-trained fraud model
type Classifier interface {
	// Predict returns the class label for one feature vector; 1 means fraud
	Predict(ctx context.Context, features entity.FeatureVector) (int, error)
	// Name identifies the loaded model in logs and errors
	Name() string
}
