package dto

import "github.com/shopspring/decimal"

type BusinessReportResponse struct {
	TotalSalesRevenue decimal.Decimal `json:"totalSalesRevenue"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	TotalPurchases    decimal.Decimal `json:"totalPurchases"`
	TotalProducts     int64           `json:"totalProducts"`
}

type PeriodReportResponse struct {
	Period       string          `json:"period"` // date or month label
	TotalSales   int64           `json:"totalSales"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalProfit  decimal.Decimal `json:"totalProfit"`
}

type DashboardSummaryResponse struct {
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	TodayProfit     decimal.Decimal `json:"todayProfit"`
	TodaySalesCount int64           `json:"todaySalesCount"`
	MonthlyRevenue  decimal.Decimal `json:"monthlyRevenue"`
	MonthlyProfit   decimal.Decimal `json:"monthlyProfit"`
	LowStockCount   int             `json:"lowStockCount"`
	TotalProducts   int64           `json:"totalProducts"`
}
