package core

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// PredictionMetrics records outcomes of fraud checks
type PredictionMetrics interface {
	// ObserveVerdict counts a completed inference and its latency
	ObserveVerdict(verdict entity.Verdict, latency Duration)
	// ObserveRejection counts a submission rejected before inference, by error code
	ObserveRejection(code int)
	// ObserveUnseenCategory counts a categorical value that fell back to the sentinel code
	ObserveUnseenCategory(column entity.CategoricalColumn)
}
