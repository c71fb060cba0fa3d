package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
)

type StockAdjustmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, adj *model.StockAdjustment) error
	List(ctx context.Context) ([]model.StockAdjustment, error)
}

type stockAdjustmentRepo struct{ db *gorm.DB }

func NewStockAdjustmentRepository(db *gorm.DB) StockAdjustmentRepository {
	return &stockAdjustmentRepo{db: db}
}

func (r *stockAdjustmentRepo) Create(ctx context.Context, tx *gorm.DB, adj *model.StockAdjustment) error {
	return tx.WithContext(ctx).Create(adj).Error
}

func (r *stockAdjustmentRepo) List(ctx context.Context) ([]model.StockAdjustment, error) {
	var adjustments []model.StockAdjustment
	err := r.db.WithContext(ctx).Preload("Product").
		Order("created_at DESC").Find(&adjustments).Error
	return adjustments, err
}
