package entity

import (
	"hash/fnv"
)

// CategoricalColumn names a column whose values are label-encoded
type CategoricalColumn string

// Categorical columns known to the encoder
const (
	ColumnMerchant CategoricalColumn = "merchant"
	ColumnCategory CategoricalColumn = "category"
	ColumnGender   CategoricalColumn = "gender"
)

// CategoricalColumns lists the encoded columns in encoding order
var CategoricalColumns = []CategoricalColumn{ColumnMerchant, ColumnCategory, ColumnGender}

// UnseenCategoryCode is substituted for values the encoder never saw during training
const UnseenCategoryCode = -1

// CardBuckets is the modulus applied to the card number hash
const CardBuckets = 100

// Feature positions. The classifier was trained on exactly this order.
const (
	FeatureMerchant = iota
	FeatureCategory
	FeatureAmount
	FeatureDistance
	FeatureHour
	FeatureDay
	FeatureMonth
	FeatureGender
	FeatureCardBucket

	FeatureCount
)

// FeatureNames maps each position to the column name used at training time
var FeatureNames = [FeatureCount]string{
	FeatureMerchant:   "merchant",
	FeatureCategory:   "category",
	FeatureAmount:     "amt",
	FeatureDistance:   "distance",
	FeatureHour:       "hour",
	FeatureDay:        "day",
	FeatureMonth:      "month",
	FeatureGender:     "gender",
	FeatureCardBucket: "cc_num",
}

// FeatureVector is the fixed-order numeric input of the classifier
type FeatureVector [FeatureCount]float64

// Slice returns the vector as a slice, in feature order
func (v FeatureVector) Slice() []float64 {
	out := make([]float64, FeatureCount)
	copy(out, v[:])
	return out
}

// DistanceKm returns the distance feature
func (v FeatureVector) DistanceKm() float64 {
	return v[FeatureDistance]
}

// CardBucket maps a card number to [0, CardBuckets) using 32-bit FNV-1a.
// The result is stable across processes and languages.
func CardBucket(cardNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cardNumber))
	return int(h.Sum32() % CardBuckets)
}
