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
	"github.com/Milansanjaya/shoe-pos-backend/internal/pricing"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
	"github.com/Milansanjaya/shoe-pos-backend/internal/worker"
)

type SaleService interface {
	CreateSale(ctx context.Context, actorID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	CreateSaleByBarcode(ctx context.Context, actorID uuid.UUID, req dto.ScanSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo       repository.SaleRepository
	products   repository.ProductRepository
	counters   repository.CounterRepository
	inventory  InventoryService
	dispatcher *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	products repository.ProductRepository,
	counters repository.CounterRepository,
	inventory InventoryService,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:       repo,
		products:   products,
		counters:   counters,
		inventory:  inventory,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── CreateSale ───────────────────────────────────────────────────────────────
// One ACID transaction per attempt:
//  1. resolve each product and reserve the variant's stock
//  2. compute subtotal / discount / grand total / profit
//  3. mint the invoice number
//  4. insert the sale with its line items
//
// Any failure aborts the whole transaction: no partial stock deduction, no
// consumed invoice number, no orphan sale. A committed sale and its stock
// decrements become visible together or not at all.

func (s *saleService) CreateSale(ctx context.Context, actorID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrInvalidQuantity)
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentCash
	}
	discountType := req.DiscountType
	if discountType == "" {
		discountType = model.DiscountNone
	}

	type resolvedItem struct {
		productID uuid.UUID
		name      string
		size      string
		color     string
		quantity  int
		price     decimal.Decimal
		cost      decimal.Decimal
	}

	var (
		sale     model.Sale
		resolved []resolvedItem
	)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		resolved = resolved[:0]
		lines := make([]pricing.Line, 0, len(req.Items))
		saleItems := make([]model.SaleItem, 0, len(req.Items))

		for _, item := range req.Items {
			pid, err := uuid.Parse(item.Product)
			if err != nil {
				return fmt.Errorf("product id %q: %w", item.Product, ErrProductNotFound)
			}
			product, err := s.products.FindByIDTx(ctx, tx, pid)
			if err != nil {
				return fmt.Errorf("product %s: %w", item.Product, ErrProductNotFound)
			}

			variant, err := s.inventory.Reserve(ctx, tx, product.ID, item.Size, item.Color, item.Quantity)
			if err != nil {
				return fmt.Errorf("%s: %w", product.Name, err)
			}

			lines = append(lines, pricing.Line{
				Price:    product.Price,
				Cost:     product.CostPrice,
				Quantity: item.Quantity,
			})
			saleItems = append(saleItems, model.SaleItem{
				ProductID: product.ID,
				Size:      variant.Size,
				Color:     variant.Color,
				Quantity:  item.Quantity,
				Price:     product.Price, // price snapshot at sale time
			})
			resolved = append(resolved, resolvedItem{
				productID: product.ID,
				name:      product.Name,
				size:      variant.Size,
				color:     variant.Color,
				quantity:  item.Quantity,
				price:     product.Price,
				cost:      product.CostPrice,
			})
		}

		totals := pricing.Compute(lines, discountType, req.DiscountValue)

		seq, err := s.counters.Next(ctx, tx, repository.CounterInvoice)
		if err != nil {
			return err
		}

		sale = model.Sale{
			InvoiceNumber:  repository.FormatInvoiceNumber(seq),
			Items:          saleItems,
			TotalAmount:    totals.Subtotal,
			DiscountType:   discountType,
			DiscountValue:  req.DiscountValue.Round(2),
			DiscountAmount: totals.DiscountAmount,
			GrandTotal:     totals.GrandTotal,
			TotalProfit:    totals.TotalProfit,
			PaymentMethod:  paymentMethod,
			SoldByID:       actorID,
		}
		return s.repo.Create(ctx, tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}

	// Pre-render the receipt PDF in the background, best effort.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJob{SaleID: sale.ID.String()})
	}

	resp := saleToResponse(&sale)
	for i, r := range resolved {
		resp.Items[i].Product = r.name
	}
	return resp, nil
}

// ── CreateSaleByBarcode ──────────────────────────────────────────────────────
// Single-item fast path: the scanned barcode resolves a variant directly.
// Same atomic protocol as CreateSale, no discount.

func (s *saleService) CreateSaleByBarcode(ctx context.Context, actorID uuid.UUID, req dto.ScanSaleRequest) (*dto.SaleResponse, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentCash
	}

	var (
		sale        model.Sale
		productName string
	)

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		variant, err := s.inventory.ReserveByBarcode(ctx, tx, req.Barcode, quantity)
		if err != nil {
			return err
		}
		product, err := s.products.FindByIDTx(ctx, tx, variant.ProductID)
		if err != nil {
			return fmt.Errorf("product %s: %w", variant.ProductID, ErrProductNotFound)
		}
		productName = product.Name

		totals := pricing.Compute([]pricing.Line{{
			Price:    product.Price,
			Cost:     product.CostPrice,
			Quantity: quantity,
		}}, model.DiscountNone, decimal.Zero)

		seq, err := s.counters.Next(ctx, tx, repository.CounterInvoice)
		if err != nil {
			return err
		}

		sale = model.Sale{
			InvoiceNumber: repository.FormatInvoiceNumber(seq),
			Items: []model.SaleItem{{
				ProductID: product.ID,
				Size:      variant.Size,
				Color:     variant.Color,
				Quantity:  quantity,
				Price:     product.Price,
			}},
			TotalAmount:    totals.Subtotal,
			DiscountType:   model.DiscountNone,
			DiscountValue:  decimal.Zero,
			DiscountAmount: totals.DiscountAmount,
			GrandTotal:     totals.GrandTotal,
			TotalProfit:    totals.TotalProfit,
			PaymentMethod:  paymentMethod,
			SoldByID:       actorID,
		}
		return s.repo.Create(ctx, tx, &sale)
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJob{SaleID: sale.ID.String()})
	}

	resp := saleToResponse(&sale)
	resp.Items[0].Product = productName
	return resp, nil
}

// ── Query surface ────────────────────────────────────────────────────────────

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	return saleToResponse(sale), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	repoFilter := repository.SaleFilter{PaymentMethod: strings.TrimSpace(filter.PaymentMethod)}

	if filter.From != "" {
		from, err := time.Parse("2006-01-02", filter.From)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q", filter.From)
		}
		repoFilter.From = &from
	}
	if filter.To != "" {
		to, err := time.Parse("2006-01-02", filter.To)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q", filter.To)
		}
		end := to.Add(24*time.Hour - time.Nanosecond)
		repoFilter.To = &end
	}

	sales, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i]))
	}
	return out, nil
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.SaleItemResponse{
			ProductID: item.ProductID.String(),
			Product:   name,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		})
	}
	soldBy := ""
	if s.SoldBy != nil {
		soldBy = s.SoldBy.Name
	}
	return &dto.SaleResponse{
		ID:             s.ID.String(),
		InvoiceNumber:  s.InvoiceNumber,
		Items:          items,
		TotalAmount:    s.TotalAmount,
		DiscountType:   s.DiscountType,
		DiscountValue:  s.DiscountValue,
		DiscountAmount: s.DiscountAmount,
		GrandTotal:     s.GrandTotal,
		TotalProfit:    s.TotalProfit,
		PaymentMethod:  s.PaymentMethod,
		SoldBy:         soldBy,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}
