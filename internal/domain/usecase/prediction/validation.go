package prediction

import (
	"fmt"
	"math"

	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
	errs "github.com/amirhossein-jamali/fraud-screening/internal/domain/error"
)

// RequestValidator checks a submission before any feature is computed
type RequestValidator struct{}

// NewRequestValidator creates a new RequestValidator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// Validate runs the checks in order and returns the first failure.
// The order decides which message the user sees:
//  1. verification checkbox
//  2. challenge answer
//  3. required text fields
//  4. numeric ranges and gender
func (v *RequestValidator) Validate(
	req entity.TransactionRequest,
	proof entity.VerificationProof,
	challenge entity.Challenge,
) error {
	if !proof.Checked {
		return errs.NewValidationError(errs.ErrNotVerified, "verified", "checkbox not checked")
	}

	if !challenge.Accepts(proof.Answer) {
		return errs.NewValidationError(errs.ErrChallengeFailed, "challengeAnswer", "answer does not match")
	}

	if err := v.validateRequiredFields(req); err != nil {
		return err
	}

	return v.validateRanges(req)
}

// validateRequiredFields checks merchant, category and card number, in that order
func (v *RequestValidator) validateRequiredFields(req entity.TransactionRequest) error {
	switch {
	case req.Merchant == "":
		return errs.NewValidationError(errs.ErrMissingField, "merchant", "empty")
	case req.Category == "":
		return errs.NewValidationError(errs.ErrMissingField, "category", "empty")
	case req.CardNumber == "":
		return errs.NewValidationError(errs.ErrMissingField, "cardNumber", "empty")
	}
	return nil
}

// validateRanges enforces the limits the form widgets impose
func (v *RequestValidator) validateRanges(req entity.TransactionRequest) error {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount < 0 {
		return errs.NewValidationError(errs.ErrInvalidField, "amount", "must be a non-negative number")
	}

	if !req.Gender.IsValid() {
		return errs.NewValidationError(errs.ErrInvalidField, "gender", fmt.Sprintf("unknown gender %q", req.Gender))
	}

	if err := checkRange("hour", req.Hour, 0, 23); err != nil {
		return err
	}
	if err := checkRange("day", req.Day, 1, 31); err != nil {
		return err
	}
	if err := checkRange("month", req.Month, 1, 12); err != nil {
		return err
	}

	locations := []struct {
		field string
		loc   entity.Location
	}{
		{"customerLocation", req.CustomerLocation},
		{"merchantLocation", req.MerchantLocation},
	}
	for _, l := range locations {
		if !isFinite(l.loc.Latitude) || !isFinite(l.loc.Longitude) {
			return errs.NewValidationError(errs.ErrInvalidField, l.field, "coordinates must be finite")
		}
		if l.loc.Latitude < -90 || l.loc.Latitude > 90 {
			return errs.NewValidationError(errs.ErrInvalidField, l.field, "latitude must be between -90 and 90")
		}
	}

	return nil
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return errs.NewValidationError(errs.ErrInvalidField, field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
