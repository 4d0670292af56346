package entity

// Verdict is the outcome of a completed fraud check
type Verdict string

// Verdict values
const (
	VerdictFraudulent Verdict = "fraudulent"
	VerdictLegitimate Verdict = "legitimate"
)

// FraudLabel is the classifier output that means fraud
const FraudLabel = 1

// VerdictFromLabel interprets a classifier label: 1 is fraud, anything else is not
func VerdictFromLabel(label int) Verdict {
	if label == FraudLabel {
		return VerdictFraudulent
	}
	return VerdictLegitimate
}

// Label returns the headline rendered for the verdict
func (v Verdict) Label() string {
	if v == VerdictFraudulent {
		return "Fraudulent Transaction"
	}
	return "Legitimate Transaction"
}

// Detail returns the follow-up message rendered under the headline
func (v Verdict) Detail() string {
	if v == VerdictFraudulent {
		return "Alert: This transaction is likely fraudulent!"
	}
	return "This transaction appears legitimate."
}

// IsFraudulent reports whether the verdict flags fraud
func (v Verdict) IsFraudulent() bool {
	return v == VerdictFraudulent
}
