package service

import "errors"

// Sentinel errors for the sale/inventory failure taxonomy. Handlers match
// these with errors.Is to pick the HTTP status; every one of them means the
// operation was rejected and nothing was committed.
var (
	ErrNoItems           = errors.New("no sale items provided")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("variant not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrSupplierRequired  = errors.New("supplier is required")
)
