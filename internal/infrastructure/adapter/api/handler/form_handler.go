package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	coreport "github.com/amirhossein-jamali/fraud-screening/internal/domain/port/core"
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/web"
	"github.com/gin-gonic/gin"
)

// FormPage is the data rendered by the fraud-check page
type FormPage struct {
	Question string
	Error    string
	Result   *dto.PredictionResponse
	Form     entity.TransactionRequest
}

// FormHandler serves the server-rendered fraud-check form
type FormHandler struct {
	predictions usecase.PredictionUseCase
	challenges  usecase.ChallengeUseCase
	logger      coreport.Logger
}

// NewFormHandler creates a new form handler instance
func NewFormHandler(
	predictions usecase.PredictionUseCase,
	challenges usecase.ChallengeUseCase,
	logger coreport.Logger,
) *FormHandler {
	return &FormHandler{
		predictions: predictions,
		challenges:  challenges,
		logger:      logger,
	}
}

// Show handles GET /
func (h *FormHandler) Show(c *gin.Context) {
	page := FormPage{Form: dto.PredictionRequest{}.ToTransaction()}
	h.render(c, http.StatusOK, page)
}

// Submit handles POST /
func (h *FormHandler) Submit(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var req dto.PredictionRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("Invalid form submission", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		page := FormPage{Error: domainerr.MsgInvalidRequest, Form: dto.PredictionRequest{}.ToTransaction()}
		h.render(c, http.StatusBadRequest, page)
		return
	}

	tx := req.ToTransaction()
	page := FormPage{Form: tx}

	result, err := h.predictions.Predict(c.Request.Context(), sessionID, tx, req.ToProof())
	if err != nil {
		if !domainerr.IsValidationError(err) {
			h.logger.Error("Error processing form submission", logFields(err, sessionID))
		}
		page.Error = domainerr.UserMessage(err)
		h.render(c, statusCode(err), page)
		return
	}

	resp := dto.NewPredictionResponse(sessionID, result)
	page.Result = &resp
	page.Question = result.NextChallenge.Question()
	h.render(c, http.StatusOK, page)
}

// render fills in the session's current question unless the page already has one
func (h *FormHandler) render(c *gin.Context, status int, page FormPage) {
	if page.Question == "" {
		sessionID := middleware.SessionID(c)
		challenge, err := h.challenges.Current(c.Request.Context(), sessionID)
		if err != nil {
			h.logger.Error("Error loading challenge", logFields(err, sessionID))
			c.String(http.StatusInternalServerError, domainerr.MsgInternalServer)
			return
		}
		page.Question = challenge.Question()
	}

	c.HTML(status, web.IndexTemplate, page)
}
