package dto

import "github.com/shopspring/decimal"

type VariantRequest struct {
	Size  string `json:"size"  validate:"required"`
	Color string `json:"color" validate:"required"`
	Stock int    `json:"stock" validate:"min=0"`
}

type CreateProductRequest struct {
	Name      string           `json:"name"     validate:"required"`
	Brand     string           `json:"brand"`
	Category  string           `json:"category"`
	Price     decimal.Decimal  `json:"price"     validate:"required"`
	CostPrice decimal.Decimal  `json:"costPrice" validate:"min=0"`
	Barcode   string           `json:"barcode"   validate:"required"`
	Supplier  string           `json:"supplier"  validate:"omitempty,uuid"`
	Variants  []VariantRequest `json:"variants"  validate:"required,min=1,dive"`
}

type UpdateProductRequest struct {
	Name      string          `json:"name"     validate:"required"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"     validate:"required"`
	CostPrice decimal.Decimal `json:"costPrice" validate:"min=0"`
	Supplier  string          `json:"supplier"  validate:"omitempty,uuid"`
}

type VariantResponse struct {
	ID      string `json:"id"`
	Size    string `json:"size"`
	Color   string `json:"color"`
	Barcode string `json:"barcode"`
	Stock   int    `json:"stock"`
}

type ProductResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Brand     string            `json:"brand"`
	Category  string            `json:"category"`
	Price     decimal.Decimal   `json:"price"`
	CostPrice decimal.Decimal   `json:"costPrice"`
	Barcode   string            `json:"barcode"`
	Supplier  *SupplierResponse `json:"supplier,omitempty"`
	Variants  []VariantResponse `json:"variants"`
	CreatedAt string            `json:"createdAt"`
}

// PriceCheckResponse is the public (cached) price lookup payload.
type PriceCheckResponse struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Barcode  string          `json:"barcode"`
	InStock  bool            `json:"inStock"`
	Variants []VariantResponse `json:"variants"`
}
