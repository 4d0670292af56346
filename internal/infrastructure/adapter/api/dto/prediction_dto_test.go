package dto

import (
	"testing"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestToTransactionDefaults(t *testing.T) {
	tx := PredictionRequest{Merchant: "Amazon", Category: "grocery", CardNumber: "1234"}.ToTransaction()

	assert.Equal(t, entity.DefaultGender, tx.Gender)
	assert.Equal(t, entity.DefaultHour, tx.Hour)
	assert.Equal(t, entity.DefaultDay, tx.Day)
	assert.Equal(t, entity.DefaultMonth, tx.Month)
	assert.Zero(t, tx.Amount)
	assert.Equal(t, entity.Location{}, tx.CustomerLocation)
	assert.Equal(t, entity.Location{}, tx.MerchantLocation)
}

func TestToTransactionValues(t *testing.T) {
	amount, lat, long := 50.0, 40.7128, -74.006
	hour, day, month := 3, 28, 2

	tx := PredictionRequest{
		Merchant:      "Amazon",
		Category:      "grocery",
		Amount:        &amount,
		Gender:        "female",
		CardNumber:    "1234",
		Latitude:      &lat,
		Longitude:     &long,
		MerchLatitude: &lat,
		Hour:          &hour,
		Day:           &day,
		Month:         &month,
	}.ToTransaction()

	assert.Equal(t, 50.0, tx.Amount)
	assert.Equal(t, entity.GenderFemale, tx.Gender)
	assert.Equal(t, entity.Location{Latitude: lat, Longitude: long}, tx.CustomerLocation)
	assert.Equal(t, entity.Location{Latitude: lat}, tx.MerchantLocation)
	assert.Equal(t, 3, tx.Hour)
	assert.Equal(t, 28, tx.Day)
	assert.Equal(t, 2, tx.Month)
}

func TestToTransactionUnknownGenderPassesThrough(t *testing.T) {
	tx := PredictionRequest{Gender: "other"}.ToTransaction()
	assert.Equal(t, entity.Gender("other"), tx.Gender)
	assert.False(t, tx.Gender.IsValid())
}

func TestToProof(t *testing.T) {
	answer := 7
	proof := PredictionRequest{Verified: true, ChallengeAnswer: &answer}.ToProof()
	assert.True(t, proof.Checked)
	assert.Equal(t, &answer, proof.Answer)

	assert.Nil(t, PredictionRequest{}.ToProof().Answer)
}

func TestNewPredictionResponse(t *testing.T) {
	resp := NewPredictionResponse("sid", &usecase.PredictionResult{
		Verdict:       entity.VerdictFraudulent,
		Label:         entity.VerdictFraudulent.Label(),
		Detail:        entity.VerdictFraudulent.Detail(),
		DistanceKm:    12.5,
		NextChallenge: entity.Challenge{Num1: 2, Num2: 8},
	})

	assert.True(t, resp.Fraudulent)
	assert.Equal(t, "Fraudulent Transaction", resp.Label)
	assert.Equal(t, 12.5, resp.DistanceKm)
	assert.Equal(t, ChallengeResponse{SessionID: "sid", Question: "What is 2 + 8?"}, resp.NextChallenge)
}
