package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Milansanjaya/shoe-pos-backend/internal/apierror"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Business godoc
// @Summary      All-time business summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.BusinessReportResponse
// @Router       /api/reports/business [get]
func (h *ReportsHandler) Business(c *gin.Context) {
	resp, err := h.svc.BusinessReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Today godoc
// @Summary      Today's sales summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PeriodReportResponse
// @Router       /api/reports/today [get]
func (h *ReportsHandler) Today(c *gin.Context) {
	resp, err := h.svc.TodayReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Monthly godoc
// @Summary      This month's sales summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PeriodReportResponse
// @Router       /api/reports/monthly [get]
func (h *ReportsHandler) Monthly(c *gin.Context) {
	resp, err := h.svc.MonthlyReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build report"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard godoc
// @Summary      Landing-page widget feed
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.DashboardSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to build summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
