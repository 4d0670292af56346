package entity

import (
	"strings"
)

// Gender is the cardholder gender as selected on the form
type Gender string

// Gender values
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Form defaults
const (
	DefaultHour   = 12
	DefaultDay    = 15
	DefaultMonth  = 6
	DefaultGender = GenderMale
)

// ParseGender converts user input into a Gender, ignoring case and surrounding spaces
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return "", false
	}
}

// IsValid reports whether g is one of the known genders
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Location is a latitude/longitude pair in decimal degrees
type Location struct {
	Latitude  float64
	Longitude float64
}

// TransactionRequest holds the attributes of one submitted transaction.
// It lives for a single request/response cycle and is never stored.
type TransactionRequest struct {
	Merchant         string
	Category         string
	Amount           float64
	Gender           Gender
	CardNumber       string // opaque identifier, only ever bucketed
	CustomerLocation Location
	MerchantLocation Location
	Hour             int
	Day              int
	Month            int
}

// HasRequiredFields reports whether merchant, category and card number are all present
func (r TransactionRequest) HasRequiredFields() bool {
	return r.Merchant != "" && r.Category != "" && r.CardNumber != ""
}

// VerificationProof is the human-verification part of a submission
type VerificationProof struct {
	Checked bool
	Answer  *int // nil when no answer was given
}
