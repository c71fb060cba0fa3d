package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Closing snapshots a day's trading at cash-up time:
// closing cash = opening cash + revenue - expenses.
type Closing struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date          string          `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	OpeningCash   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalSales    int             `gorm:"not null"`
	TotalRevenue  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalProfit   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ClosingCash   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ClosedByID    uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	ClosedBy *User `gorm:"foreignKey:ClosedByID"`
}
