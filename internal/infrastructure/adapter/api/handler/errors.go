package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
	"github.com/amirhossein-jamali/fraud-screening/internal/infrastructure/adapter/api/dto"
)

// statusCode maps domain errors to HTTP status codes
func statusCode(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrInvalidRequest), errors.Is(err, domainerr.ErrSessionNotFound):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse builds the response body for err
func errorResponse(err error) dto.ErrorResponse {
	return dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: domainerr.UserMessage(err),
	}
}

// logFields describes err for structured logging
func logFields(err error, sessionID string) map[string]any {
	var vErr *domainerr.ValidationError
	if errors.As(err, &vErr) {
		fields := vErr.LogFields()
		fields["session_id"] = sessionID
		return fields
	}
	fields := map[string]any{
		"session_id": sessionID,
		"error":      err.Error(),
		"error_code": domainerr.ErrorCode(err),
	}
	if domainerr.IsInferenceError(err) {
		fields["error_type"] = "inference_error"
	}
	return fields
}
