package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	Product string `json:"product" validate:"required,uuid"`
	Size    string `json:"size"    validate:"required"`
	Color   string `json:"color"   validate:"required"`
	// Quantity is range-checked by the sale engine so a non-positive value is
	// reported as an InvalidQuantity rejection, not a generic validation error.
	Quantity int `json:"quantity"`
}

type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Transfer"`
	DiscountType  string            `json:"discountType"  validate:"omitempty,oneof=NONE PERCENTAGE FLAT"`
	DiscountValue decimal.Decimal   `json:"discountValue" validate:"omitempty,min=0"`
}

// ScanSaleRequest is the single-item fast path: the barcode identifies a
// variant directly, no product/size/color triple needed.
type ScanSaleRequest struct {
	Barcode       string `json:"barcode" validate:"required"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=Cash Card Transfer"`
}

// SaleFilter is bound from the query string of GET /api/sales.
type SaleFilter struct {
	From          string `form:"from"`          // YYYY-MM-DD
	To            string `form:"to"`            // YYYY-MM-DD
	PaymentMethod string `form:"paymentMethod"` // Cash | Card | Transfer
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID string          `json:"productId"`
	Product   string          `json:"product"` // display name
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoiceNumber"`
	Items          []SaleItemResponse `json:"items"`
	TotalAmount    decimal.Decimal    `json:"totalAmount"`
	DiscountType   string             `json:"discountType"`
	DiscountValue  decimal.Decimal    `json:"discountValue"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	GrandTotal     decimal.Decimal    `json:"grandTotal"`
	TotalProfit    decimal.Decimal    `json:"totalProfit"`
	PaymentMethod  string             `json:"paymentMethod"`
	SoldBy         string             `json:"soldBy"`
	CreatedAt      string             `json:"createdAt"`
}
