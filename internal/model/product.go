package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry (one shoe model). Price and CostPrice are
// per-unit amounts shared by every variant; stock lives on the variants.
type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Brand     string
	Category  string
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostPrice decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// Barcode identifies the product as a whole; each variant additionally
	// carries its own scannable barcode.
	Barcode    string     `gorm:"uniqueIndex;not null"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
	Variants []Variant `gorm:"foreignKey:ProductID"`
}

// Variant is a (size, color) combination of a Product with its own stock
// count. Stock is never negative; it is mutated only through the inventory
// ledger's atomic check-and-adjust operations.
type Variant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_variants_product_size_color"`
	Size      string    `gorm:"not null;uniqueIndex:idx_variants_product_size_color"`
	Color     string    `gorm:"not null;uniqueIndex:idx_variants_product_size_color"`
	Barcode   string    `gorm:"uniqueIndex;not null"`
	Stock     int       `gorm:"not null;default:0;check:stock >= 0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
