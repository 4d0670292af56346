package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PredictionHandler serves the JSON fraud-check API
type PredictionHandler struct {
	predictions usecase.PredictionUseCase
	challenges  usecase.ChallengeUseCase
	logger      coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance
func NewPredictionHandler(
	predictions usecase.PredictionUseCase,
	challenges usecase.ChallengeUseCase,
	logger coreport.Logger,
) *PredictionHandler {
	return &PredictionHandler{
		predictions: predictions,
		challenges:  challenges,
		logger:      logger,
	}
}

// GetChallenge handles GET /api/v1/challenge
func (h *PredictionHandler) GetChallenge(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	challenge, err := h.challenges.Current(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("Error loading challenge", logFields(err, sessionID))
		c.JSON(statusCode(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, dto.NewChallengeResponse(sessionID, challenge))
}

// Predict handles POST /api/v1/predictions
func (h *PredictionHandler) Predict(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid prediction request format", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: domainerr.MsgInvalidRequest,
		})
		return
	}

	result, err := h.predictions.Predict(c.Request.Context(), sessionID, req.ToTransaction(), req.ToProof())
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error processing prediction", logFields(err, sessionID))
		}
		c.JSON(statusCode(err), errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionResponse(sessionID, result))
}
