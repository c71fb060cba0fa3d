package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

type PurchaseService interface {
	CreatePurchase(ctx context.Context, actorID uuid.UUID, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error)
}

type purchaseService struct {
	repo      repository.PurchaseRepository
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	counters  repository.CounterRepository
	inventory InventoryService
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	counters repository.CounterRepository,
	inventory InventoryService,
) PurchaseService {
	return &purchaseService{
		repo:      repo,
		products:  products,
		suppliers: suppliers,
		counters:  counters,
		inventory: inventory,
	}
}

// CreatePurchase books incoming stock: every variant increment, the cost
// price refresh, the counter increment and the purchase insert commit as one
// transaction, mirroring the sale engine's protocol in the other direction.
func (s *purchaseService) CreatePurchase(ctx context.Context, actorID uuid.UUID, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplierID, err := uuid.Parse(req.Supplier)
	if err != nil {
		return nil, ErrSupplierRequired
	}
	supplier, err := s.suppliers.FindByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("supplier %s: %w", req.Supplier, ErrSupplierRequired)
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	type resolvedItem struct {
		name string
	}

	var (
		purchase model.Purchase
		resolved []resolvedItem
	)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		resolved = resolved[:0]
		totalAmount := decimal.Zero
		items := make([]model.PurchaseItem, 0, len(req.Items))

		for i, item := range req.Items {
			size := strings.TrimSpace(item.Size)
			color := strings.TrimSpace(item.Color)
			if size == "" || color == "" {
				return fmt.Errorf("item %d: size and color are required: %w", i+1, ErrVariantNotFound)
			}
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

			if _, err := s.inventory.Restore(ctx, tx, product.ID, size, color, item.Quantity); err != nil {
				return fmt.Errorf("%s: %w", product.Name, err)
			}
			// Latest purchase cost becomes the product's cost price.
			if err := s.products.UpdateCostPriceTx(ctx, tx, product.ID, item.CostPrice); err != nil {
				return err
			}

			totalAmount = totalAmount.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
			items = append(items, model.PurchaseItem{
				ProductID: product.ID,
				Size:      size,
				Color:     color,
				Quantity:  item.Quantity,
				CostPrice: item.CostPrice,
			})
			resolved = append(resolved, resolvedItem{name: product.Name})
		}

		seq, err := s.counters.Next(ctx, tx, repository.CounterPurchase)
		if err != nil {
			return err
		}

		purchase = model.Purchase{
			PurchaseNumber: repository.FormatPurchaseNumber(seq),
			SupplierID:     supplierID,
			Items:          items,
			TotalAmount:    totalAmount.Round(2),
			PurchasedByID:  actorID,
		}
		return s.repo.Create(ctx, tx, &purchase)
	})
	if txErr != nil {
		return nil, txErr
	}

	purchase.Supplier = supplier
	resp := purchaseToResponse(&purchase)
	for i, r := range resolved {
		resp.Items[i].Product = r.name
	}
	return resp, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("purchase not found")
		}
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

func (s *purchaseService) ListPurchases(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *purchaseToResponse(&purchases[i]))
	}
	return out, nil
}

func purchaseToResponse(p *model.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.PurchaseItemResponse{
			ProductID: item.ProductID.String(),
			Product:   name,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			CostPrice: item.CostPrice,
		})
	}
	var supplier *dto.SupplierResponse
	if p.Supplier != nil {
		supplier = &dto.SupplierResponse{
			ID:      p.Supplier.ID.String(),
			Name:    p.Supplier.Name,
			Phone:   p.Supplier.Phone,
			Address: p.Supplier.Address,
		}
	}
	purchasedBy := ""
	if p.PurchasedBy != nil {
		purchasedBy = p.PurchasedBy.Name
	}
	return &dto.PurchaseResponse{
		ID:             p.ID.String(),
		PurchaseNumber: p.PurchaseNumber,
		Supplier:       supplier,
		Items:          items,
		TotalAmount:    p.TotalAmount,
		PurchasedBy:    purchasedBy,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}
