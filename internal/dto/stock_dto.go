package dto

type AdjustStockRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Size      string `json:"size"      validate:"required"`
	Color     string `json:"color"     validate:"required"`
	Type      string `json:"type"      validate:"required,oneof=INCREASE DECREASE"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
	Reason    string `json:"reason"`
}

type StockAdjustmentResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	NewStock  int    `json:"newStock"`
	CreatedAt string `json:"createdAt"`
}
