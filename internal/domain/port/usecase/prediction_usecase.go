package usecase

import (
	"context"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// PredictionResult contains the outcome of a completed fraud check
type PredictionResult struct {
	Verdict       entity.Verdict
	Label         string
	Detail        string
	DistanceKm    float64
	NextChallenge entity.Challenge // challenge to present for the next submission
}

// PredictionUseCase validates a submission, builds its features and runs inference
type PredictionUseCase interface {
	// Predict returns a verdict, or a validation error when the submission is rejected.
	// Validation errors wrap one of errs.ErrNotVerified, errs.ErrChallengeFailed,
	// errs.ErrMissingField or errs.ErrInvalidField.
	Predict(ctx context.Context, sessionID string, req entity.TransactionRequest, proof entity.VerificationProof) (*PredictionResult, error)
}
