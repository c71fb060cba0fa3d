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

type PurchasesHandler struct{ svc service.PurchaseService }

func NewPurchasesHandler(svc service.PurchaseService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc}
}

// CreatePurchase godoc
// @Summary      Book incoming stock from a supplier
// @Description  Increments variant stock, refreshes cost prices and mints a purchase number in one transaction.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePurchaseRequest true "Purchase"
// @Success      201 {object} dto.PurchaseResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/purchases [post]
func (h *PurchasesHandler) CreatePurchase(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CreatePurchase(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListPurchases godoc
// @Summary      List purchases, newest first
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchasesHandler) ListPurchases(c *gin.Context) {
	resp, err := h.svc.ListPurchases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list purchases"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPurchase godoc
// @Summary      Get one purchase
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Purchase UUID"
// @Success      200 {object} dto.PurchaseResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/purchases/{id} [get]
func (h *PurchasesHandler) GetPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
