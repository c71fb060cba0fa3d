package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
	"github.com/Milansanjaya/shoe-pos-backend/internal/worker"
)

type ClosingService interface {
	CloseDay(ctx context.Context, actorID uuid.UUID, req dto.CloseDayRequest) (*dto.ClosingResponse, error)
	ListClosings(ctx context.Context) ([]dto.ClosingResponse, error)
}

type closingService struct {
	repo       repository.ClosingRepository
	sales      repository.SaleRepository
	expenses   repository.ExpenseRepository
	dispatcher *worker.Dispatcher
}

func NewClosingService(
	repo repository.ClosingRepository,
	sales repository.SaleRepository,
	expenses repository.ExpenseRepository,
	dispatcher *worker.Dispatcher,
) ClosingService {
	return &closingService{repo: repo, sales: sales, expenses: expenses, dispatcher: dispatcher}
}

// CloseDay snapshots today's trading. Revenue counts what was actually
// charged after discounts; closing cash = opening cash + revenue - expenses.
func (s *closingService) CloseDay(ctx context.Context, actorID uuid.UUID, req dto.CloseDayRequest) (*dto.ClosingResponse, error) {
	now := time.Now()
	from, to := dayBounds(now)

	totals, err := s.sales.Totals(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.TotalBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	closing := model.Closing{
		Date:          now.Format("2006-01-02"),
		OpeningCash:   req.OpeningCash.Round(2),
		TotalSales:    int(totals.Count),
		TotalRevenue:  totals.Revenue.Round(2),
		TotalProfit:   totals.Profit.Round(2),
		TotalExpenses: totalExpenses.Round(2),
		ClosingCash:   req.OpeningCash.Add(totals.Revenue).Sub(totalExpenses).Round(2),
		ClosedByID:    actorID,
	}
	if err := s.repo.Create(ctx, &closing); err != nil {
		return nil, err
	}

	// Email the summary to the owner; the record is already committed, so a
	// failed send never blocks the cash-up.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueClosingEmail(ctx, worker.ClosingEmailJob{
			Date:          closing.Date,
			TotalSales:    closing.TotalSales,
			TotalRevenue:  closing.TotalRevenue.StringFixed(2),
			TotalProfit:   closing.TotalProfit.StringFixed(2),
			TotalExpenses: closing.TotalExpenses.StringFixed(2),
			ClosingCash:   closing.ClosingCash.StringFixed(2),
		})
	}

	return closingToResponse(&closing), nil
}

func (s *closingService) ListClosings(ctx context.Context) ([]dto.ClosingResponse, error) {
	closings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClosingResponse, 0, len(closings))
	for i := range closings {
		out = append(out, *closingToResponse(&closings[i]))
	}
	return out, nil
}

func closingToResponse(c *model.Closing) *dto.ClosingResponse {
	return &dto.ClosingResponse{
		ID:            c.ID.String(),
		Date:          c.Date,
		OpeningCash:   c.OpeningCash,
		TotalSales:    c.TotalSales,
		TotalRevenue:  c.TotalRevenue,
		TotalProfit:   c.TotalProfit,
		TotalExpenses: c.TotalExpenses,
		ClosingCash:   c.ClosingCash,
	}
}
