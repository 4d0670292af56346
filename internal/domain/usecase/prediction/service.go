package prediction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/inference"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
)

// Service ties together validation, feature building and inference for one submission
type Service struct {
	challenges   usecase.ChallengeUseCase
	validator    *RequestValidator
	builder      *FeatureBuilder
	classifier   inference.Classifier
	metrics      coreport.PredictionMetrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPredictionService creates a new prediction service
func NewPredictionService(
	challenges usecase.ChallengeUseCase,
	encoder inference.CategoricalEncoder,
	distance inference.DistanceCalculator,
	classifier inference.Classifier,
	metrics coreport.PredictionMetrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		challenges:   challenges,
		validator:    NewRequestValidator(),
		builder:      NewFeatureBuilder(encoder, distance, metrics, logger),
		classifier:   classifier,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Predict checks one submission against the session's challenge and, when it
// passes, classifies it. Once the classifier has been invoked the session gets a
// new challenge, whatever the outcome; rejected submissions keep the old one.
func (s *Service) Predict(
	ctx context.Context,
	sessionID string,
	req entity.TransactionRequest,
	proof entity.VerificationProof,
) (*usecase.PredictionResult, error) {
	challenge, err := s.challenges.Current(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session challenge: %w", err)
	}

	if err := s.validator.Validate(req, proof, challenge); err != nil {
		s.metrics.ObserveRejection(errs.ErrorCode(err))
		s.logger.Info("Submission rejected", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
		})
		return nil, err
	}

	features := s.builder.Build(req)

	start := s.timeProvider.Now()
	label, predictErr := s.classifier.Predict(ctx, features)
	latency := s.timeProvider.Since(start)

	next, regenErr := s.challenges.Regenerate(ctx, sessionID)
	if regenErr != nil {
		s.logger.Warn("Failed to regenerate challenge after inference", map[string]any{
			"session_id": sessionID,
			"error":      regenErr.Error(),
		})
		next = challenge
	}

	if predictErr != nil {
		s.logger.Error("Inference failed", map[string]any{
			"session_id": sessionID,
			"model":      s.classifier.Name(),
			"error":      predictErr.Error(),
		})
		return nil, errs.NewInferenceError(s.classifier.Name(), predictErr)
	}

	verdict := entity.VerdictFromLabel(label)
	s.metrics.ObserveVerdict(verdict, latency)

	s.logger.Info("Transaction classified", map[string]any{
		"session_id":  sessionID,
		"verdict":     string(verdict),
		"distance_km": features.DistanceKm(),
		"card_bucket": features[entity.FeatureCardBucket],
		"latency_ms":  latency.Std().Milliseconds(),
	})

	return &usecase.PredictionResult{
		Verdict:       verdict,
		Label:         verdict.Label(),
		Detail:        verdict.Detail(),
		DistanceKm:    features.DistanceKm(),
		NextChallenge: next,
	}, nil
}
