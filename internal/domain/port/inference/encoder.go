package inference

import (
	"github.com/amirhossein-jamali/fraud-screening/internal/domain/entity"
)

// CategoricalEncoder maps categorical values to the integer codes learned at training time
type CategoricalEncoder interface {
	// Encode returns the code of value in column and whether the value was seen during training
	Encode(column entity.CategoricalColumn, value string) (int, bool)
}
