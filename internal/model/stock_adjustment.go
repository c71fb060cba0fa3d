package model

import (
	"time"

	"github.com/google/uuid"
)

// Adjustment directions.
const (
	AdjustIncrease = "INCREASE"
	AdjustDecrease = "DECREASE"
)

// StockAdjustment is the audit record for a manual stock correction.
type StockAdjustment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Size         string    `gorm:"not null"`
	Color        string    `gorm:"not null"`
	Type         string    `gorm:"type:varchar(10);not null"` // INCREASE | DECREASE
	Quantity     int       `gorm:"not null"`
	Reason       string
	AdjustedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
