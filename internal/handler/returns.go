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

type ReturnsHandler struct{ svc service.ReturnService }

func NewReturnsHandler(svc service.ReturnService) *ReturnsHandler {
	return &ReturnsHandler{svc: svc}
}

// CreateReturn godoc
// @Summary      Register a customer return against a sale
// @Description  Restores stock for the returned items and records the refund. The original sale is untouched.
// @Tags         returns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateReturnRequest true "Return"
// @Success      201 {object} dto.ReturnResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/returns [post]
func (h *ReturnsHandler) CreateReturn(c *gin.Context) {
	var req dto.CreateReturnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CreateReturn(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListReturns godoc
// @Summary      List returns, newest first
// @Tags         returns
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ReturnResponse
// @Router       /api/returns [get]
func (h *ReturnsHandler) ListReturns(c *gin.Context) {
	resp, err := h.svc.ListReturns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list returns"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
