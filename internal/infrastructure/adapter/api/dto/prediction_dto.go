package dto

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
)

// PredictionRequest is a fraud-check submission, bound from JSON or from the HTML form.
// Omitted numeric fields take the form defaults.
type PredictionRequest struct {
	Verified        bool     `json:"verified" form:"verified"`
	ChallengeAnswer *int     `json:"challengeAnswer" form:"challenge_answer"`
	Merchant        string   `json:"merchant" form:"merchant"`
	Category        string   `json:"category" form:"category"`
	Amount          *float64 `json:"amount" form:"amt"`
	Gender          string   `json:"gender" form:"gender"`
	CardNumber      string   `json:"cardNumber" form:"cc_num"`
	Latitude        *float64 `json:"latitude" form:"lat"`
	Longitude       *float64 `json:"longitude" form:"long"`
	MerchLatitude   *float64 `json:"merchantLatitude" form:"merch_lat"`
	MerchLongitude  *float64 `json:"merchantLongitude" form:"merch_long"`
	Hour            *int     `json:"hour" form:"hour"`
	Day             *int     `json:"day" form:"day"`
	Month           *int     `json:"month" form:"month"`
}

// ToTransaction maps the submission to the domain request, applying defaults.
// An unrecognised gender is passed through so validation can reject it in order.
func (r PredictionRequest) ToTransaction() entity.TransactionRequest {
	gender := entity.DefaultGender
	if r.Gender != "" {
		if g, ok := entity.ParseGender(r.Gender); ok {
			gender = g
		} else {
			gender = entity.Gender(r.Gender)
		}
	}

	return entity.TransactionRequest{
		Merchant:   r.Merchant,
		Category:   r.Category,
		Amount:     floatOr(r.Amount, 0),
		Gender:     gender,
		CardNumber: r.CardNumber,
		CustomerLocation: entity.Location{
			Latitude:  floatOr(r.Latitude, 0),
			Longitude: floatOr(r.Longitude, 0),
		},
		MerchantLocation: entity.Location{
			Latitude:  floatOr(r.MerchLatitude, 0),
			Longitude: floatOr(r.MerchLongitude, 0),
		},
		Hour:  intOr(r.Hour, entity.DefaultHour),
		Day:   intOr(r.Day, entity.DefaultDay),
		Month: intOr(r.Month, entity.DefaultMonth),
	}
}

// ToProof extracts the human-verification part of the submission
func (r PredictionRequest) ToProof() entity.VerificationProof {
	return entity.VerificationProof{
		Checked: r.Verified,
		Answer:  r.ChallengeAnswer,
	}
}

// ChallengeResponse presents a session's challenge
type ChallengeResponse struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question"`
}

// NewChallengeResponse creates a ChallengeResponse
func NewChallengeResponse(sessionID string, c entity.Challenge) ChallengeResponse {
	return ChallengeResponse{SessionID: sessionID, Question: c.Question()}
}

// PredictionResponse is the verdict of a completed fraud check
type PredictionResponse struct {
	Fraudulent    bool              `json:"fraudulent"`
	Label         string            `json:"label"`
	Detail        string            `json:"detail"`
	DistanceKm    float64           `json:"distanceKm"`
	NextChallenge ChallengeResponse `json:"nextChallenge"`
}

// NewPredictionResponse maps a use case result to the API response
func NewPredictionResponse(sessionID string, result *usecase.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Fraudulent:    result.Verdict.IsFraudulent(),
		Label:         result.Label,
		Detail:        result.Detail,
		DistanceKm:    result.DistanceKm,
		NextChallenge: NewChallengeResponse(sessionID, result.NextChallenge),
	}
}

func floatOr(v *float64, d float64) float64 {
	if v == nil {
		return d
	}
	return *v
}

func intOr(v *int, d int) int {
	if v == nil {
		return d
	}
	return *v
}
