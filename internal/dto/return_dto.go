package dto

import "github.com/shopspring/decimal"

type ReturnItemRequest struct {
	Product  string          `json:"product"  validate:"required,uuid"`
	Size     string          `json:"size"     validate:"required"`
	Color    string          `json:"color"    validate:"required"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
}

type CreateReturnRequest struct {
	SaleID string              `json:"saleId" validate:"required,uuid"`
	Items  []ReturnItemRequest `json:"items"  validate:"required,min=1,dive"`
}

type ReturnItemResponse struct {
	ProductID    string          `json:"productId"`
	Size         string          `json:"size"`
	Color        string          `json:"color"`
	Quantity     int             `json:"quantity"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
}

type ReturnResponse struct {
	ID          string               `json:"id"`
	SaleID      string               `json:"saleId"`
	Items       []ReturnItemResponse `json:"items"`
	TotalRefund decimal.Decimal      `json:"totalRefund"`
	ReturnedBy  string               `json:"returnedBy"`
	CreatedAt   string               `json:"createdAt"`
}
