package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount types accepted on a sale.
const (
	DiscountNone       = "NONE"
	DiscountPercentage = "PERCENTAGE"
	DiscountFlat       = "FLAT"
)

// Payment methods.
const (
	PaymentCash     = "Cash"
	PaymentCard     = "Card"
	PaymentTransfer = "Transfer"
)

// Sale is immutable once created. It exists in storage iff its inventory
// side effects were durably applied in the same transaction; cancellations
// and refunds are separate Return records, never edits.
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvoiceNumber string          `gorm:"uniqueIndex;not null"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountType  string          `gorm:"type:varchar(20);not null;default:'NONE'"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// DiscountAmount is derived from DiscountType/DiscountValue, clamped so
	// it never exceeds TotalAmount.
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalProfit    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PaymentMethod  string          `gorm:"type:varchar(20);not null;default:'Cash'"`
	SoldByID       uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"index"`

	Items  []SaleItem `gorm:"foreignKey:SaleID"`
	SoldBy *User      `gorm:"foreignKey:SoldByID"`
}

// SaleItem snapshots the unit price at sale time so later catalog price
// changes never rewrite history.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Size      string          `gorm:"not null"`
	Color     string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
