package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Counter names used across the system.
const (
	CounterInvoice  = "invoice"
	CounterPurchase = "purchase"
	CounterBarcode  = "barcode"
)

// CounterRepository issues monotonically increasing numeric sequences per
// named counter. Next must always run inside the caller's transaction so an
// aborted sale/purchase rolls the increment back and no value is consumed.
type CounterRepository interface {
	Next(ctx context.Context, tx *gorm.DB, name string) (int64, error)
}

type counterRepo struct{ db *gorm.DB }

func NewCounterRepository(db *gorm.DB) CounterRepository { return &counterRepo{db: db} }

func (r *counterRepo) Next(ctx context.Context, tx *gorm.DB, name string) (int64, error) {
	// Single atomic upsert-increment: the row lock taken by the UPDATE
	// serializes concurrent callers, so no two transactions ever read the
	// same post-increment value.
	var seq int64
	err := tx.WithContext(ctx).Raw(`
		INSERT INTO counters (name, sequence) VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET sequence = counters.sequence + 1
		RETURNING sequence`, name).Scan(&seq).Error
	return seq, err
}

// FormatInvoiceNumber renders a sequence value as the externally visible
// invoice identifier, e.g. INV-00001.
func FormatInvoiceNumber(seq int64) string { return fmt.Sprintf("INV-%05d", seq) }

// FormatPurchaseNumber renders a purchase order number, e.g. PUR-00001.
func FormatPurchaseNumber(seq int64) string { return fmt.Sprintf("PUR-%05d", seq) }

// FormatVariantBarcode renders a minted variant barcode: fixed-width numeric,
// no prefix.
func FormatVariantBarcode(seq int64) string { return fmt.Sprintf("%07d", seq) }
