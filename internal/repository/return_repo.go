package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
)

type ReturnRepository interface {
	Create(ctx context.Context, tx *gorm.DB, ret *model.Return) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Return, error)
	List(ctx context.Context) ([]model.Return, error)
}

type returnRepo struct{ db *gorm.DB }

func NewReturnRepository(db *gorm.DB) ReturnRepository { return &returnRepo{db: db} }

func (r *returnRepo) Create(ctx context.Context, tx *gorm.DB, ret *model.Return) error {
	return tx.WithContext(ctx).Create(ret).Error
}

func (r *returnRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Return, error) {
	var ret model.Return
	err := r.db.WithContext(ctx).Preload("Items").Preload("ReturnedBy").
		First(&ret, "id = ?", id).Error
	return &ret, err
}

func (r *returnRepo) List(ctx context.Context) ([]model.Return, error) {
	var returns []model.Return
	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").Find(&returns).Error
	return returns, err
}
