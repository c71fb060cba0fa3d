package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

// LowStockThreshold is the default cutoff for the low-stock report.
const LowStockThreshold = 5

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	GetProductByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context, threshold int) ([]repository.LowStockItem, error)
}

type productService struct {
	repo     repository.ProductRepository
	counters repository.CounterRepository
}

func NewProductService(repo repository.ProductRepository, counters repository.CounterRepository) ProductService {
	return &productService{repo: repo, counters: counters}
}

// CreateProduct inserts the product with its variants. Each variant gets a
// freshly minted scannable barcode from the shared counter, inside the same
// transaction as the insert so a failed create never consumes barcodes.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var supplierID *uuid.UUID
	if req.Supplier != "" {
		id, err := uuid.Parse(req.Supplier)
		if err != nil {
			return nil, ErrSupplierRequired
		}
		supplierID = &id
	}

	seen := make(map[string]struct{}, len(req.Variants))
	variants := make([]model.Variant, 0, len(req.Variants))
	for _, v := range req.Variants {
		size := strings.TrimSpace(v.Size)
		color := strings.TrimSpace(v.Color)
		key := size + "\x00" + color
		if _, dup := seen[key]; dup {
			return nil, errors.New("duplicate variant: " + size + " / " + color)
		}
		seen[key] = struct{}{}
		variants = append(variants, model.Variant{Size: size, Color: color, Stock: v.Stock})
	}

	var product model.Product

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range variants {
			seq, err := s.counters.Next(ctx, tx, repository.CounterBarcode)
			if err != nil {
				return err
			}
			variants[i].Barcode = repository.FormatVariantBarcode(seq)
		}
		product = model.Product{
			Name:       strings.TrimSpace(req.Name),
			Brand:      req.Brand,
			Category:   req.Category,
			Price:      req.Price.Round(2),
			CostPrice:  req.CostPrice.Round(2),
			Barcode:    strings.TrimSpace(req.Barcode),
			SupplierID: supplierID,
			Variants:   variants,
		}
		return s.repo.Create(ctx, tx, &product)
	})
	if txErr != nil {
		return nil, txErr
	}

	return productToResponse(&product), nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productToResponse(product), nil
}

// GetProductByBarcode resolves a scanned product barcode, listing only
// variants that still have stock to sell.
func (s *productService) GetProductByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByBarcode(ctx, strings.TrimSpace(barcode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	available := product.Variants[:0]
	for _, v := range product.Variants {
		if v.Stock > 0 {
			available = append(available, v)
		}
	}
	product.Variants = available
	return productToResponse(product), nil
}

func (s *productService) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

// UpdateProduct changes catalog fields only. Variants and stock are managed
// through purchases, returns and adjustments, never through this path.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Brand = req.Brand
	product.Category = req.Category
	product.Price = req.Price.Round(2)
	product.CostPrice = req.CostPrice.Round(2)
	if req.Supplier != "" {
		sid, err := uuid.Parse(req.Supplier)
		if err != nil {
			return nil, ErrSupplierRequired
		}
		product.SupplierID = &sid
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *productService) LowStock(ctx context.Context, threshold int) ([]repository.LowStockItem, error) {
	if threshold <= 0 {
		threshold = LowStockThreshold
	}
	return s.repo.LowStock(ctx, threshold)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	variants := make([]dto.VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, dto.VariantResponse{
			ID:      v.ID.String(),
			Size:    v.Size,
			Color:   v.Color,
			Barcode: v.Barcode,
			Stock:   v.Stock,
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
	return &dto.ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Price:     p.Price,
		CostPrice: p.CostPrice,
		Barcode:   p.Barcode,
		Supplier:  supplier,
		Variants:  variants,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
