package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Milansanjaya/shoe-pos-backend/internal/apierror"
	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/middleware"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
)

type ExpensesHandler struct{ svc service.ExpenseService }

func NewExpensesHandler(svc service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{svc: svc}
}

// CreateExpense godoc
// @Summary      Record a business expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateExpenseRequest true "Expense"
// @Success      201 {object} dto.ExpenseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/expenses [post]
func (h *ExpensesHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CreateExpense(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MonthlyExpenses godoc
// @Summary      List this month's expenses with their total
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.MonthlyExpensesResponse
// @Router       /api/expenses/monthly [get]
func (h *ExpensesHandler) MonthlyExpenses(c *gin.Context) {
	resp, err := h.svc.MonthlyExpenses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list expenses"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
