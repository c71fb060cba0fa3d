package dto

import "github.com/shopspring/decimal"

type PurchaseItemRequest struct {
	Product   string          `json:"product"   validate:"required,uuid"`
	Size      string          `json:"size"      validate:"required"`
	Color     string          `json:"color"     validate:"required"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	CostPrice decimal.Decimal `json:"costPrice" validate:"required"`
}

type CreatePurchaseRequest struct {
	Supplier string                `json:"supplier" validate:"required,uuid"`
	Items    []PurchaseItemRequest `json:"items"    validate:"required,min=1,dive"`
}

type PurchaseItemResponse struct {
	ProductID string          `json:"productId"`
	Product   string          `json:"product"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

type PurchaseResponse struct {
	ID             string                 `json:"id"`
	PurchaseNumber string                 `json:"purchaseNumber"`
	Supplier       *SupplierResponse      `json:"supplier,omitempty"`
	Items          []PurchaseItemResponse `json:"items"`
	TotalAmount    decimal.Decimal        `json:"totalAmount"`
	PurchasedBy    string                 `json:"purchasedBy"`
	CreatedAt      string                 `json:"createdAt"`
}
