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

type ClosingsHandler struct{ svc service.ClosingService }

func NewClosingsHandler(svc service.ClosingService) *ClosingsHandler {
	return &ClosingsHandler{svc: svc}
}

// CloseDay godoc
// @Summary      Close today's trading
// @Description  Aggregates today's sales and expenses into a closing snapshot and emails the summary to the owner.
// @Tags         closings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CloseDayRequest true "Opening cash"
// @Success      201 {object} dto.ClosingResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/closings/close [post]
func (h *ClosingsHandler) CloseDay(c *gin.Context) {
	var req dto.CloseDayRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CloseDay(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListClosings godoc
// @Summary      List daily closings, newest first
// @Tags         closings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClosingResponse
// @Router       /api/closings [get]
func (h *ClosingsHandler) ListClosings(c *gin.Context) {
	resp, err := h.svc.ListClosings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list closings"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
