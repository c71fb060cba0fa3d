package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

// InventoryService is the only component that mutates variant stock. Every
// method runs inside the caller's transaction, so a sale (or purchase,
// return, adjustment) either applies all of its stock movements or none.
type InventoryService interface {
	// Reserve atomically decrements stock for the (size, color) variant of a
	// product. Fails with ErrVariantNotFound or ErrInsufficientStock; on
	// success the returned variant carries the post-decrement stock.
	Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, quantity int) (*model.Variant, error)
	// ReserveByBarcode is the scan fast path: the barcode resolves a variant
	// directly, bypassing the product + size + color triple.
	ReserveByBarcode(ctx context.Context, tx *gorm.DB, barcode string, quantity int) (*model.Variant, error)
	// Restore increments stock with no upper bound check (purchases, returns,
	// increase adjustments).
	Restore(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, quantity int) (*model.Variant, error)
}

type inventoryService struct {
	products repository.ProductRepository
}

func NewInventoryService(products repository.ProductRepository) InventoryService {
	return &inventoryService{products: products}
}

func (s *inventoryService) Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, quantity int) (*model.Variant, error) {
	variant, err := s.findVariant(ctx, tx, productID, size, color)
	if err != nil {
		return nil, err
	}
	return s.reserve(ctx, tx, variant, quantity)
}

func (s *inventoryService) ReserveByBarcode(ctx context.Context, tx *gorm.DB, barcode string, quantity int) (*model.Variant, error) {
	variant, err := s.products.FindVariantByBarcodeTx(ctx, tx, strings.TrimSpace(barcode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("barcode %s: %w", barcode, ErrVariantNotFound)
		}
		return nil, err
	}
	return s.reserve(ctx, tx, variant, quantity)
}

func (s *inventoryService) Restore(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string, quantity int) (*model.Variant, error) {
	variant, err := s.findVariant(ctx, tx, productID, size, color)
	if err != nil {
		return nil, err
	}
	if err := s.products.AdjustVariantStockTx(ctx, tx, variant.ID, quantity); err != nil {
		return nil, err
	}
	variant.Stock += quantity
	return variant, nil
}

// findVariant matches (size, color) exactly after trimming surrounding
// whitespace; matching is case-sensitive.
func (s *inventoryService) findVariant(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string) (*model.Variant, error) {
	size = strings.TrimSpace(size)
	color = strings.TrimSpace(color)
	variant, err := s.products.FindVariantTx(ctx, tx, productID, size, color)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("size %s / color %s: %w", size, color, ErrVariantNotFound)
		}
		return nil, err
	}
	return variant, nil
}

func (s *inventoryService) reserve(ctx context.Context, tx *gorm.DB, variant *model.Variant, quantity int) (*model.Variant, error) {
	if variant.Stock < quantity {
		return nil, fmt.Errorf("size %s / color %s has %d in stock, %d requested: %w",
			variant.Size, variant.Color, variant.Stock, quantity, ErrInsufficientStock)
	}
	// Guarded decrement: a concurrent sale may have raced past the read
	// above, so the UPDATE re-checks availability at the row level.
	rows, err := s.products.ReserveVariantStockTx(ctx, tx, variant.ID, quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("size %s / color %s: %w", variant.Size, variant.Color, ErrInsufficientStock)
	}
	variant.Stock -= quantity
	return variant, nil
}
