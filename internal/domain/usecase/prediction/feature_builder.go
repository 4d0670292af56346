package prediction

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/inference"
)

// FeatureBuilder turns a validated request into the classifier's input
type FeatureBuilder struct {
	encoder  inference.CategoricalEncoder
	distance inference.DistanceCalculator
	metrics  coreport.PredictionMetrics
	logger   coreport.Logger
}

// NewFeatureBuilder creates a new FeatureBuilder
func NewFeatureBuilder(
	encoder inference.CategoricalEncoder,
	distance inference.DistanceCalculator,
	metrics coreport.PredictionMetrics,
	logger coreport.Logger,
) *FeatureBuilder {
	return &FeatureBuilder{
		encoder:  encoder,
		distance: distance,
		metrics:  metrics,
		logger:   logger,
	}
}

// Build assembles the feature vector in training order
func (b *FeatureBuilder) Build(req entity.TransactionRequest) entity.FeatureVector {
	var v entity.FeatureVector

	v[entity.FeatureMerchant] = float64(b.encode(entity.ColumnMerchant, req.Merchant))
	v[entity.FeatureCategory] = float64(b.encode(entity.ColumnCategory, req.Category))
	v[entity.FeatureAmount] = req.Amount
	v[entity.FeatureDistance] = b.distance.DistanceKm(req.CustomerLocation, req.MerchantLocation)
	v[entity.FeatureHour] = float64(req.Hour)
	v[entity.FeatureDay] = float64(req.Day)
	v[entity.FeatureMonth] = float64(req.Month)
	v[entity.FeatureGender] = float64(b.encode(entity.ColumnGender, string(req.Gender)))
	v[entity.FeatureCardBucket] = float64(entity.CardBucket(req.CardNumber))

	return v
}

// encode looks up a categorical value, substituting the sentinel code when it is unseen
func (b *FeatureBuilder) encode(column entity.CategoricalColumn, value string) int {
	code, ok := b.encoder.Encode(column, value)
	if ok {
		return code
	}

	b.logger.Debug("Unseen categorical value, using sentinel code", map[string]any{
		"column": string(column),
		"value":  value,
	})
	b.metrics.ObserveUnseenCategory(column)
	return entity.UnseenCategoryCode
}
