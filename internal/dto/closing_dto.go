package dto

import "github.com/shopspring/decimal"

type CloseDayRequest struct {
	OpeningCash decimal.Decimal `json:"openingCash" validate:"min=0"`
}

type ClosingResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	OpeningCash   decimal.Decimal `json:"openingCash"`
	TotalSales    int             `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	ClosingCash   decimal.Decimal `json:"closingCash"`
}
