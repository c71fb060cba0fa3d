package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

type StockService interface {
	AdjustStock(ctx context.Context, actorID uuid.UUID, req dto.AdjustStockRequest) (*dto.StockAdjustmentResponse, error)
	ListAdjustments(ctx context.Context) ([]dto.StockAdjustmentResponse, error)
}

type stockService struct {
	repo      repository.StockAdjustmentRepository
	products  repository.ProductRepository
	inventory InventoryService
}

func NewStockService(
	repo repository.StockAdjustmentRepository,
	products repository.ProductRepository,
	inventory InventoryService,
) StockService {
	return &stockService{repo: repo, products: products, inventory: inventory}
}

// AdjustStock applies a manual correction. DECREASE goes through the same
// sufficiency check as a sale; both directions leave an audit record in the
// same transaction as the stock movement.
func (s *stockService) AdjustStock(ctx context.Context, actorID uuid.UUID, req dto.AdjustStockRequest) (*dto.StockAdjustmentResponse, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", req.ProductID, ErrProductNotFound)
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var (
		adj      model.StockAdjustment
		newStock int
	)

	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		product, err := s.products.FindByIDTx(ctx, tx, pid)
		if err != nil {
			return fmt.Errorf("product %s: %w", req.ProductID, ErrProductNotFound)
		}

		var variant *model.Variant
		if req.Type == model.AdjustDecrease {
			variant, err = s.inventory.Reserve(ctx, tx, product.ID, req.Size, req.Color, req.Quantity)
		} else {
			variant, err = s.inventory.Restore(ctx, tx, product.ID, req.Size, req.Color, req.Quantity)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", product.Name, err)
		}
		newStock = variant.Stock

		adj = model.StockAdjustment{
			ProductID:    product.ID,
			Size:         variant.Size,
			Color:        variant.Color,
			Type:         req.Type,
			Quantity:     req.Quantity,
			Reason:       req.Reason,
			AdjustedByID: actorID,
		}
		return s.repo.Create(ctx, tx, &adj)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := adjustmentToResponse(&adj)
	resp.NewStock = newStock
	return resp, nil
}

func (s *stockService) ListAdjustments(ctx context.Context) ([]dto.StockAdjustmentResponse, error) {
	adjustments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAdjustmentResponse, 0, len(adjustments))
	for i := range adjustments {
		out = append(out, *adjustmentToResponse(&adjustments[i]))
	}
	return out, nil
}

func adjustmentToResponse(a *model.StockAdjustment) *dto.StockAdjustmentResponse {
	return &dto.StockAdjustmentResponse{
		ID:        a.ID.String(),
		ProductID: a.ProductID.String(),
		Size:      a.Size,
		Color:     a.Color,
		Type:      a.Type,
		Quantity:  a.Quantity,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
