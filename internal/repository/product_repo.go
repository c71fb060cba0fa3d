package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
)

// LowStockItem is a flattened variant row for the low-stock report.
type LowStockItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Size        string    `json:"size"`
	Color       string    `json:"color"`
	Stock       int       `json:"stock"`
}

// ProductRepository defines the data access contract for products and their
// variants. Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
//
// The *Tx methods participate in a caller-owned transaction; every stock
// mutation during a sale/purchase/return/adjustment must go through them so
// the whole operation commits or rolls back as one unit.
type ProductRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	LowStock(ctx context.Context, threshold int) ([]LowStockItem, error)

	FindByIDTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	FindVariantTx(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string) (*model.Variant, error)
	FindVariantByBarcodeTx(ctx context.Context, tx *gorm.DB, barcode string) (*model.Variant, error)
	// ReserveVariantStockTx decrements stock only when enough is available;
	// returns the number of rows updated (0 = insufficient stock).
	ReserveVariantStockTx(ctx context.Context, tx *gorm.DB, variantID uuid.UUID, quantity int) (int64, error)
	// AdjustVariantStockTx applies a signed delta with no upper bound check.
	AdjustVariantStockTx(ctx context.Context, tx *gorm.DB, variantID uuid.UUID, delta int) error
	UpdateCostPriceTx(ctx context.Context, tx *gorm.DB, productID uuid.UUID, cost decimal.Decimal) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) DB() *gorm.DB { return r.db }

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Product) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Variants").Preload("Supplier").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Variants").
		Where("barcode = ?", barcode).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Preload("Variants").Preload("Supplier").
		Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Variants").Delete(&model.Product{ID: id}).Error
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) LowStock(ctx context.Context, threshold int) ([]LowStockItem, error) {
	var items []LowStockItem
	err := r.db.WithContext(ctx).
		Table("variants").
		Select("variants.product_id, products.name AS product_name, variants.size, variants.color, variants.stock").
		Joins("JOIN products ON products.id = variants.product_id").
		Where("variants.stock <= ?", threshold).
		Order("variants.stock ASC").
		Scan(&items).Error
	return items, err
}

func (r *productRepo) FindByIDTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) FindVariantTx(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size, color string) (*model.Variant, error) {
	var v model.Variant
	err := tx.WithContext(ctx).
		Where("product_id = ? AND size = ? AND color = ?", productID, size, color).
		First(&v).Error
	return &v, err
}

func (r *productRepo) FindVariantByBarcodeTx(ctx context.Context, tx *gorm.DB, barcode string) (*model.Variant, error) {
	var v model.Variant
	err := tx.WithContext(ctx).Where("barcode = ?", barcode).First(&v).Error
	return &v, err
}

func (r *productRepo) ReserveVariantStockTx(ctx context.Context, tx *gorm.DB, variantID uuid.UUID, quantity int) (int64, error) {
	// Guarded decrement: the stock >= quantity predicate makes concurrent
	// sales against the same variant serialize on the row, so a stale read
	// can never overdraw stock.
	res := tx.WithContext(ctx).Model(&model.Variant{}).
		Where("id = ? AND stock >= ?", variantID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return res.RowsAffected, res.Error
}

func (r *productRepo) AdjustVariantStockTx(ctx context.Context, tx *gorm.DB, variantID uuid.UUID, delta int) error {
	return tx.WithContext(ctx).Model(&model.Variant{}).
		Where("id = ?", variantID).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *productRepo) UpdateCostPriceTx(ctx context.Context, tx *gorm.DB, productID uuid.UUID, cost decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Update("cost_price", cost).Error
}
