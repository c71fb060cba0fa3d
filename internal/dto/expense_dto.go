package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	Title    string          `json:"title"  validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Category string          `json:"category"`
}

type ExpenseResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt string          `json:"createdAt"`
}

type MonthlyExpensesResponse struct {
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	Expenses      []ExpenseResponse `json:"expenses"`
}
