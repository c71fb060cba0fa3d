package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Milansanjaya/shoe-pos-backend/internal/apierror"
	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/infra"
	"github.com/Milansanjaya/shoe-pos-backend/internal/middleware"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
)

type SalesHandler struct {
	svc         service.SaleService
	sales       repository.SaleRepository
	receiptPath string
}

func NewSalesHandler(svc service.SaleService, sales repository.SaleRepository, receiptPath string) *SalesHandler {
	return &SalesHandler{svc: svc, sales: sales, receiptPath: receiptPath}
}

// CreateSale godoc
// @Summary      Register a new sale
// @Description  Creates a sale atomically: reserves stock, computes totals, mints the invoice number. All-or-nothing.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateSaleRequest true "Cart contents"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/sales [post]
func (h *SalesHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CreateSale(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ScanSale godoc
// @Summary      Register a sale by scanning a variant barcode
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ScanSaleRequest true "Scanned barcode"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/sales/scan [post]
func (h *SalesHandler) ScanSale(c *gin.Context) {
	var req dto.ScanSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	actorID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.CreateSaleByBarcode(c.Request.Context(), actorID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSales godoc
// @Summary      List sales, newest first
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        from          query string false "YYYY-MM-DD"
// @Param        to            query string false "YYYY-MM-DD"
// @Param        paymentMethod query string false "Cash | Card | Transfer"
// @Success      200 {array} dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) ListSales(c *gin.Context) {
	var filter dto.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSale godoc
// @Summary      Get one sale with its items
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Sale UUID"
// @Success      200 {object} dto.SaleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load sale"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PrintSale serves the receipt PDF for a sale. The receipt worker usually
// pre-rendered it; when the file is missing we render on demand.
//
// @Summary      Download the receipt PDF for a sale
// @Tags         sales
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Sale UUID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /api/sales/{id}/print [get]
func (h *SalesHandler) PrintSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}

	sale, err := h.sales.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("sale not found"))
		return
	}

	path := infra.ReceiptPath(h.receiptPath, sale.InvoiceNumber)
	if _, statErr := os.Stat(path); statErr != nil {
		path, err = infra.GenerateReceiptPDF(sale, h.receiptPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("failed to render receipt"))
			return
		}
	}

	c.Header("Content-Disposition", `inline; filename="receipt_`+sale.InvoiceNumber+`.pdf"`)
	c.File(path)
}
