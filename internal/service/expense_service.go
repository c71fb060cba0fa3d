package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, actorID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	MonthlyExpenses(ctx context.Context) (*dto.MonthlyExpensesResponse, error)
}

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) CreateExpense(ctx context.Context, actorID uuid.UUID, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense := model.Expense{
		Title:     req.Title,
		Amount:    req.Amount.Round(2),
		Category:  req.Category,
		AddedByID: actorID,
	}
	if err := s.repo.Create(ctx, &expense); err != nil {
		return nil, err
	}
	return expenseToResponse(&expense), nil
}

// MonthlyExpenses lists the current calendar month's expenses with their sum.
func (s *expenseService) MonthlyExpenses(ctx context.Context) (*dto.MonthlyExpensesResponse, error) {
	from, to := monthBounds(time.Now())

	expenses, err := s.repo.FindBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.TotalBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, *expenseToResponse(&expenses[i]))
	}
	return &dto.MonthlyExpensesResponse{TotalExpenses: total, Expenses: out}, nil
}

func expenseToResponse(e *model.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID.String(),
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

// dayBounds returns the [start, end] instants of t's calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// monthBounds returns the [start, end] instants of t's calendar month.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
