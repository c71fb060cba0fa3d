package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
)

type ClosingRepository interface {
	Create(ctx context.Context, c *model.Closing) error
	List(ctx context.Context) ([]model.Closing, error)
}

type closingRepo struct{ db *gorm.DB }

func NewClosingRepository(db *gorm.DB) ClosingRepository { return &closingRepo{db: db} }

func (r *closingRepo) Create(ctx context.Context, c *model.Closing) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *closingRepo) List(ctx context.Context) ([]model.Closing, error) {
	var closings []model.Closing
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&closings).Error
	return closings, err
}
