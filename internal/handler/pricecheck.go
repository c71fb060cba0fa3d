package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Milansanjaya/shoe-pos-backend/internal/apierror"
	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

const priceCacheTTL = 4 * time.Hour

// PriceCheckHandler serves the public price lookup endpoint. No
// authentication, no side effects; in-store price checker kiosks hit this.
type PriceCheckHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceCheckHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceCheckHandler {
	return &PriceCheckHandler{repo: repo, rdb: rdb}
}

// GetPriceByBarcode godoc
// @Summary Price lookup by product barcode (no authentication)
// @Tags price
// @Produce json
// @Param barcode path string true "Product barcode"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/price/{barcode} [get]
func (h *PriceCheckHandler) GetPriceByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "price:" + barcode

	// Try Redis cache first
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// Cache miss, query DB
	product, err := h.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	inStock := false
	variants := make([]dto.VariantResponse, 0, len(product.Variants))
	for _, v := range product.Variants {
		if v.Stock <= 0 {
			continue
		}
		inStock = true
		variants = append(variants, dto.VariantResponse{
			ID:      v.ID.String(),
			Size:    v.Size,
			Color:   v.Color,
			Barcode: v.Barcode,
			Stock:   v.Stock,
		})
	}

	resp := dto.PriceCheckResponse{
		Name:     product.Name,
		Brand:    product.Brand,
		Price:    product.Price,
		Barcode:  product.Barcode,
		InStock:  inStock,
		Variants: variants,
	}

	// Populate cache, best effort
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
