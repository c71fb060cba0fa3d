// Package pricing computes sale totals. Pure arithmetic with no storage
// access, so the sale engine can call it from inside a transaction
// and tests can exercise every discount branch without a database.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
)

// Line is one cart position with the price and cost snapshotted at sale time.
type Line struct {
	Price    decimal.Decimal
	Cost     decimal.Decimal
	Quantity int
}

// Totals holds every derived monetary figure of a sale, rounded to 2 decimals.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	GrandTotal     decimal.Decimal
	TotalCost      decimal.Decimal
	TotalProfit    decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Compute derives subtotal, discount, grand total and profit from the line
// items and the discount policy. The discount is clamped so it never exceeds
// the subtotal; the discount reduces profit (profit = grandTotal - totalCost).
func Compute(lines []Line, discountType string, discountValue decimal.Decimal) Totals {
	subtotal := decimal.Zero
	totalCost := decimal.Zero
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		subtotal = subtotal.Add(l.Price.Mul(qty))
		totalCost = totalCost.Add(l.Cost.Mul(qty))
	}

	if discountValue.IsNegative() {
		discountValue = decimal.Zero
	}

	var discount decimal.Decimal
	switch discountType {
	case model.DiscountPercentage:
		discount = subtotal.Mul(discountValue).Div(hundred)
	case model.DiscountFlat:
		discount = discountValue
	default:
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	grandTotal := subtotal.Sub(discount)

	return Totals{
		Subtotal:       subtotal.Round(2),
		DiscountAmount: discount.Round(2),
		GrandTotal:     grandTotal.Round(2),
		TotalCost:      totalCost.Round(2),
		TotalProfit:    grandTotal.Sub(totalCost).Round(2),
	}
}
