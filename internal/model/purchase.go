package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase records incoming stock from a supplier. Creating one increases
// variant stock and refreshes the product's cost price inside a single
// transaction.
type Purchase struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseNumber string          `gorm:"uniqueIndex;not null"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PurchasedByID  uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time       `gorm:"index"`

	Items       []PurchaseItem `gorm:"foreignKey:PurchaseID"`
	Supplier    *Supplier      `gorm:"foreignKey:SupplierID"`
	PurchasedBy *User          `gorm:"foreignKey:PurchasedByID"`
}

type PurchaseItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Size       string          `gorm:"not null"`
	Color      string          `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
