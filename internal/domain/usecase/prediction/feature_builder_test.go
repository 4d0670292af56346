package prediction

import (
	"testing"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	mcore "github.com/amirhossein-jamali/fraud-screening/mocks/port/core"
	minf "github.com/amirhossein-jamali/fraud-screening/mocks/port/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBuildFeatureVector(t *testing.T) {
	req := validRequest()
	req.Amount = 123.45
	req.Hour, req.Day, req.Month = 3, 28, 11
	req.Gender = entity.GenderFemale

	encoder := new(minf.MockCategoricalEncoder)
	encoder.On("Encode", entity.ColumnMerchant, "Amazon").Return(17, true)
	encoder.On("Encode", entity.ColumnCategory, "grocery").Return(4, true)
	encoder.On("Encode", entity.ColumnGender, "Female").Return(0, true)

	distance := new(minf.MockDistanceCalculator)
	distance.On("DistanceKm", req.CustomerLocation, req.MerchantLocation).Return(12.5)

	metrics := mcore.NewMockPredictionMetrics()
	builder := NewFeatureBuilder(encoder, distance, metrics, mcore.NewMockLogger())

	v := builder.Build(req)

	expected := entity.FeatureVector{17, 4, 123.45, 12.5, 3, 28, 11, 0, float64(entity.CardBucket("1234"))}
	assert.Equal(t, expected, v)
	metrics.AssertNotCalled(t, "ObserveUnseenCategory", mock.Anything)
	encoder.AssertExpectations(t)
	distance.AssertExpectations(t)
}

func TestBuildUnseenCategoriesUseSentinel(t *testing.T) {
	req := validRequest()

	encoder := new(minf.MockCategoricalEncoder)
	encoder.On("Encode", entity.ColumnMerchant, "Amazon").Return(0, false)
	encoder.On("Encode", entity.ColumnCategory, "grocery").Return(0, false)
	encoder.On("Encode", entity.ColumnGender, "Male").Return(1, true)

	distance := new(minf.MockDistanceCalculator)
	distance.On("DistanceKm", mock.Anything, mock.Anything).Return(0.0)

	metrics := new(mcore.MockPredictionMetrics)
	metrics.On("ObserveUnseenCategory", entity.ColumnMerchant).Once()
	metrics.On("ObserveUnseenCategory", entity.ColumnCategory).Once()

	builder := NewFeatureBuilder(encoder, distance, metrics, mcore.NewMockLogger())

	v := builder.Build(req)

	assert.Equal(t, float64(entity.UnseenCategoryCode), v[entity.FeatureMerchant])
	assert.Equal(t, float64(entity.UnseenCategoryCode), v[entity.FeatureCategory])
	assert.Equal(t, 1.0, v[entity.FeatureGender])
	metrics.AssertExpectations(t)
}

func TestBuildCardBucketInRange(t *testing.T) {
	encoder := new(minf.MockCategoricalEncoder)
	encoder.On("Encode", mock.Anything, mock.Anything).Return(0, true)
	distance := new(minf.MockDistanceCalculator)
	distance.On("DistanceKm", mock.Anything, mock.Anything).Return(0.0)

	builder := NewFeatureBuilder(encoder, distance, mcore.NewMockPredictionMetrics(), mcore.NewMockLogger())

	for _, card := range []string{"1", "1234", "4111111111111111", "not-a-card", "  "} {
		req := validRequest()
		req.CardNumber = card

		first := builder.Build(req)[entity.FeatureCardBucket]
		second := builder.Build(req)[entity.FeatureCardBucket]

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first, 0.0)
		assert.Less(t, first, float64(entity.CardBuckets))
	}
}
