package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Return restores stock for previously sold items. It references the
// originating Sale but never mutates it.
type Return struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalRefund  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReturnedByID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time

	Items      []ReturnItem `gorm:"foreignKey:ReturnID"`
	Sale       *Sale        `gorm:"foreignKey:SaleID"`
	ReturnedBy *User        `gorm:"foreignKey:ReturnedByID"`
}

type ReturnItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReturnID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	Size         string          `gorm:"not null"`
	Color        string          `gorm:"not null"`
	Quantity     int             `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
