package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

type ReturnService interface {
	CreateReturn(ctx context.Context, actorID uuid.UUID, req dto.CreateReturnRequest) (*dto.ReturnResponse, error)
	ListReturns(ctx context.Context) ([]dto.ReturnResponse, error)
}

type returnService struct {
	repo      repository.ReturnRepository
	sales     repository.SaleRepository
	products  repository.ProductRepository
	inventory InventoryService
}

func NewReturnService(
	repo repository.ReturnRepository,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	inventory InventoryService,
) ReturnService {
	return &returnService{repo: repo, sales: sales, products: products, inventory: inventory}
}

// CreateReturn restores stock for returned items and records the refund.
// The originating sale stays untouched; returns are their own records.
func (s *returnService) CreateReturn(ctx context.Context, actorID uuid.UUID, req dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		return nil, ErrSaleNotFound
	}
	if _, err := s.sales.FindByID(ctx, saleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	var ret model.Return

	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		totalRefund := decimal.Zero
		items := make([]model.ReturnItem, 0, len(req.Items))

		for i, item := range req.Items {
			if item.Quantity <= 0 {
				return fmt.Errorf("item %d: %w", i+1, ErrInvalidQuantity)
			}
			pid, err := uuid.Parse(item.Product)
			if err != nil {
				return fmt.Errorf("product id %q: %w", item.Product, ErrProductNotFound)
			}
			product, err := s.products.FindByIDTx(ctx, tx, pid)
			if err != nil {
				return fmt.Errorf("product %s: %w", item.Product, ErrProductNotFound)
			}

			if _, err := s.inventory.Restore(ctx, tx, product.ID, item.Size, item.Color, item.Quantity); err != nil {
				return fmt.Errorf("%s: %w", product.Name, err)
			}

			refund := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
			totalRefund = totalRefund.Add(refund)
			items = append(items, model.ReturnItem{
				ProductID:    product.ID,
				Size:         item.Size,
				Color:        item.Color,
				Quantity:     item.Quantity,
				Price:        item.Price,
				RefundAmount: refund,
			})
		}

		ret = model.Return{
			SaleID:       saleID,
			Items:        items,
			TotalRefund:  totalRefund.Round(2),
			ReturnedByID: actorID,
		}
		return s.repo.Create(ctx, tx, &ret)
	})
	if txErr != nil {
		return nil, txErr
	}

	return returnToResponse(&ret), nil
}

func (s *returnService) ListReturns(ctx context.Context) ([]dto.ReturnResponse, error) {
	returns, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReturnResponse, 0, len(returns))
	for i := range returns {
		out = append(out, *returnToResponse(&returns[i]))
	}
	return out, nil
}

func returnToResponse(r *model.Return) *dto.ReturnResponse {
	items := make([]dto.ReturnItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, dto.ReturnItemResponse{
			ProductID:    item.ProductID.String(),
			Size:         item.Size,
			Color:        item.Color,
			Quantity:     item.Quantity,
			RefundAmount: item.RefundAmount,
		})
	}
	returnedBy := ""
	if r.ReturnedBy != nil {
		returnedBy = r.ReturnedBy.Name
	}
	return &dto.ReturnResponse{
		ID:          r.ID.String(),
		SaleID:      r.SaleID.String(),
		Items:       items,
		TotalRefund: r.TotalRefund,
		ReturnedBy:  returnedBy,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
