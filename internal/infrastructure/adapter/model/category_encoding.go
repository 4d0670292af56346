package model

import (
	"time"
)

// CategoryEncoding is one class of a label-encoded column
type CategoryEncoding struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ColumnName string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_category_encodings_column_value;uniqueIndex:idx_category_encodings_column_code"`
	Value      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_category_encodings_column_value"`
	Code       int       `gorm:"not null;uniqueIndex:idx_category_encodings_column_code"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for the category encoding model
func (CategoryEncoding) TableName() string {
	return "category_encodings"
}
