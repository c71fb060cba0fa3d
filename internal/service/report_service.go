package service

import (
	"context"
	"time"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

type ReportService interface {
	BusinessReport(ctx context.Context) (*dto.BusinessReportResponse, error)
	TodayReport(ctx context.Context) (*dto.PeriodReportResponse, error)
	MonthlyReport(ctx context.Context) (*dto.PeriodReportResponse, error)
	DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type reportService struct {
	sales     repository.SaleRepository
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
}

func NewReportService(
	sales repository.SaleRepository,
	purchases repository.PurchaseRepository,
	products repository.ProductRepository,
) ReportService {
	return &reportService{sales: sales, purchases: purchases, products: products}
}

// BusinessReport aggregates over the whole trading history.
func (s *reportService) BusinessReport(ctx context.Context) (*dto.BusinessReportResponse, error) {
	totals, err := s.sales.Totals(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	purchaseTotal, err := s.purchases.TotalAmount(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.BusinessReportResponse{
		TotalSalesRevenue: totals.Revenue,
		TotalProfit:       totals.Profit,
		TotalPurchases:    purchaseTotal,
		TotalProducts:     productCount,
	}, nil
}

func (s *reportService) TodayReport(ctx context.Context) (*dto.PeriodReportResponse, error) {
	now := time.Now()
	from, to := dayBounds(now)
	totals, err := s.sales.Totals(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	return &dto.PeriodReportResponse{
		Period:       now.Format("2006-01-02"),
		TotalSales:   totals.Count,
		TotalRevenue: totals.Revenue,
		TotalProfit:  totals.Profit,
	}, nil
}

func (s *reportService) MonthlyReport(ctx context.Context) (*dto.PeriodReportResponse, error) {
	now := time.Now()
	from, to := monthBounds(now)
	totals, err := s.sales.Totals(ctx, &from, &to)
	if err != nil {
		return nil, err
	}
	return &dto.PeriodReportResponse{
		Period:       now.Format("January 2006"),
		TotalSales:   totals.Count,
		TotalRevenue: totals.Revenue,
		TotalProfit:  totals.Profit,
	}, nil
}

// DashboardSummary is the landing-page widget feed: today, this month, and
// the inventory health counters in one payload.
func (s *reportService) DashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()

	dayFrom, dayTo := dayBounds(now)
	today, err := s.sales.Totals(ctx, &dayFrom, &dayTo)
	if err != nil {
		return nil, err
	}

	monthFrom, monthTo := monthBounds(now)
	month, err := s.sales.Totals(ctx, &monthFrom, &monthTo)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.products.LowStock(ctx, LowStockThreshold)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummaryResponse{
		TodayRevenue:    today.Revenue,
		TodayProfit:     today.Profit,
		TodaySalesCount: today.Count,
		MonthlyRevenue:  month.Revenue,
		MonthlyProfit:   month.Profit,
		LowStockCount:   len(lowStock),
		TotalProducts:   productCount,
	}, nil
}
