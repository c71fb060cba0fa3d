package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
)

// In-memory repository stubs. The services open no real transaction when the
// repository reports a nil DB, so every method here runs against plain maps.
// Mutexes keep the stubs safe for the concurrency tests.

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Product repository ───────────────────────────────────────────────────────

type stubProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*model.Product
	variants map[uuid.UUID]*model.Variant

	// When journaling, the *Tx mutators record undo actions so a test can
	// replay the rollback a real transaction would perform on failure.
	journaling bool
	journal    []func()
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products: make(map[uuid.UUID]*model.Product),
		variants: make(map[uuid.UUID]*model.Variant),
	}
}

// addProduct seeds a product and its variants, returning the stored product.
func (r *stubProductRepo) addProduct(name, price, cost string, variants ...model.Variant) *model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     d(price),
		CostPrice: d(cost),
		Barcode:   "P-" + uuid.NewString()[:8],
	}
	r.products[p.ID] = p
	for i := range variants {
		v := variants[i]
		v.ID = uuid.New()
		v.ProductID = p.ID
		if v.Barcode == "" {
			v.Barcode = uuid.NewString()[:8]
		}
		r.variants[v.ID] = &v
	}
	return p
}

func (r *stubProductRepo) stockOf(productID uuid.UUID, size, color string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.variants {
		if v.ProductID == productID && v.Size == size && v.Color == color {
			return v.Stock
		}
	}
	return -1
}

// beginTx starts recording undo actions for the *Tx stock and cost mutators.
// rollbackTx replays them in reverse, mirroring what the database does when
// the surrounding transaction aborts. Mutations made outside the *Tx methods
// are deliberately not journaled, so they would survive a rollback and fail
// the caller's assertions.
func (r *stubProductRepo) beginTx() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journaling = true
	r.journal = r.journal[:0]
}

func (r *stubProductRepo) rollbackTx() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.journal) - 1; i >= 0; i-- {
		r.journal[i]()
	}
	r.journal = r.journal[:0]
	r.journaling = false
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

func (r *stubProductRepo) Create(_ context.Context, _ *gorm.DB, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.products[p.ID] = &cp
	for i := range p.Variants {
		if p.Variants[i].ID == uuid.Nil {
			p.Variants[i].ID = uuid.New()
		}
		p.Variants[i].ProductID = p.ID
		v := p.Variants[i]
		r.variants[v.ID] = &v
	}
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	cp.Variants = nil
	for _, v := range r.variants {
		if v.ProductID == id {
			cp.Variants = append(cp.Variants, *v)
		}
	}
	return &cp, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode == barcode {
			cp := *p
			cp.Variants = nil
			for _, v := range r.variants {
				if v.ProductID == p.ID {
					cp.Variants = append(cp.Variants, *v)
				}
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	for vid, v := range r.variants {
		if v.ProductID == id {
			delete(r.variants, vid)
		}
	}
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) LowStock(_ context.Context, threshold int) ([]repository.LowStockItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []repository.LowStockItem
	for _, v := range r.variants {
		if v.Stock <= threshold {
			name := ""
			if p, ok := r.products[v.ProductID]; ok {
				name = p.Name
			}
			items = append(items, repository.LowStockItem{
				ProductID:   v.ProductID,
				ProductName: name,
				Size:        v.Size,
				Color:       v.Color,
				Stock:       v.Stock,
			})
		}
	}
	return items, nil
}

func (r *stubProductRepo) FindByIDTx(_ context.Context, _ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindVariantTx(_ context.Context, _ *gorm.DB, productID uuid.UUID, size, color string) (*model.Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.variants {
		if v.ProductID == productID && v.Size == size && v.Color == color {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindVariantByBarcodeTx(_ context.Context, _ *gorm.DB, barcode string) (*model.Variant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.variants {
		if v.Barcode == barcode {
			cp := *v
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) ReserveVariantStockTx(_ context.Context, _ *gorm.DB, variantID uuid.UUID, quantity int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.variants[variantID]
	if !ok || v.Stock < quantity {
		return 0, nil
	}
	v.Stock -= quantity
	if r.journaling {
		r.journal = append(r.journal, func() { v.Stock += quantity })
	}
	return 1, nil
}

func (r *stubProductRepo) AdjustVariantStockTx(_ context.Context, _ *gorm.DB, variantID uuid.UUID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.variants[variantID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Stock += delta
	if r.journaling {
		r.journal = append(r.journal, func() { v.Stock -= delta })
	}
	return nil
}

func (r *stubProductRepo) UpdateCostPriceTx(_ context.Context, _ *gorm.DB, productID uuid.UUID, cost decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	prev := p.CostPrice
	p.CostPrice = cost
	if r.journaling {
		r.journal = append(r.journal, func() { p.CostPrice = prev })
	}
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Sale repository ──────────────────────────────────────────────────────────

type stubSaleRepo struct {
	mu    sync.Mutex
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

func (r *stubSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Sale
	for _, s := range r.sales {
		if filter.From != nil && s.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.CreatedAt.After(*filter.To) {
			continue
		}
		if filter.PaymentMethod != "" && s.PaymentMethod != filter.PaymentMethod {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) FindBetween(_ context.Context, from, to time.Time) ([]model.Sale, error) {
	f, t := from, to
	return r.List(context.Background(), repository.SaleFilter{From: &f, To: &t})
}

func (r *stubSaleRepo) Totals(_ context.Context, from, to *time.Time) (repository.SaleTotals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := repository.SaleTotals{Revenue: decimal.Zero, Profit: decimal.Zero}
	for _, s := range r.sales {
		if from != nil && s.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && s.CreatedAt.After(*to) {
			continue
		}
		totals.Count++
		totals.Revenue = totals.Revenue.Add(s.GrandTotal)
		totals.Profit = totals.Profit.Add(s.TotalProfit)
	}
	return totals, nil
}

func (r *stubSaleRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sales)
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── Counter repository ───────────────────────────────────────────────────────

// stubCounterRepo mirrors the upsert-increment semantics of the real table.
type stubCounterRepo struct {
	mu  sync.Mutex
	seq map[string]int64
}

func newStubCounterRepo() *stubCounterRepo {
	return &stubCounterRepo{seq: make(map[string]int64)}
}

func (r *stubCounterRepo) Next(_ context.Context, _ *gorm.DB, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq[name]++
	return r.seq[name], nil
}

func (r *stubCounterRepo) current(name string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq[name]
}

var _ repository.CounterRepository = (*stubCounterRepo)(nil)

// ── Supplier repository ──────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) add(name string) *model.Supplier {
	s := &model.Supplier{ID: uuid.New(), Name: name}
	r.suppliers[s.ID] = s
	return s
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── Purchase repository ──────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases []model.Purchase
}

func (r *stubPurchaseRepo) DB() *gorm.DB { return nil }

func (r *stubPurchaseRepo) Create(_ context.Context, _ *gorm.DB, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	for i := range r.purchases {
		if r.purchases[i].ID == id {
			return &r.purchases[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	return r.purchases, nil
}

func (r *stubPurchaseRepo) TotalAmount(_ context.Context, _, _ *time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for i := range r.purchases {
		total = total.Add(r.purchases[i].TotalAmount)
	}
	return total, nil
}

var _ repository.PurchaseRepository = (*stubPurchaseRepo)(nil)

// ── Return repository ────────────────────────────────────────────────────────

type stubReturnRepo struct {
	returns []model.Return
}

func (r *stubReturnRepo) Create(_ context.Context, _ *gorm.DB, ret *model.Return) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	r.returns = append(r.returns, *ret)
	return nil
}

func (r *stubReturnRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Return, error) {
	for i := range r.returns {
		if r.returns[i].ID == id {
			return &r.returns[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReturnRepo) List(_ context.Context) ([]model.Return, error) {
	return r.returns, nil
}

var _ repository.ReturnRepository = (*stubReturnRepo)(nil)

// ── Stock adjustment repository ──────────────────────────────────────────────

type stubAdjustmentRepo struct {
	adjustments []model.StockAdjustment
}

func (r *stubAdjustmentRepo) Create(_ context.Context, _ *gorm.DB, adj *model.StockAdjustment) error {
	if adj.ID == uuid.Nil {
		adj.ID = uuid.New()
	}
	r.adjustments = append(r.adjustments, *adj)
	return nil
}

func (r *stubAdjustmentRepo) List(_ context.Context) ([]model.StockAdjustment, error) {
	return r.adjustments, nil
}

var _ repository.StockAdjustmentRepository = (*stubAdjustmentRepo)(nil)

// ── Closing repository ───────────────────────────────────────────────────────

type stubClosingRepo struct {
	closings []model.Closing
}

func (r *stubClosingRepo) Create(_ context.Context, c *model.Closing) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.closings = append(r.closings, *c)
	return nil
}

func (r *stubClosingRepo) List(_ context.Context) ([]model.Closing, error) {
	return r.closings, nil
}

var _ repository.ClosingRepository = (*stubClosingRepo)(nil)

// ── Expense repository ───────────────────────────────────────────────────────

type stubExpenseRepo struct {
	expenses []model.Expense
}

func (r *stubExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	r.expenses = append(r.expenses, *e)
	return nil
}

func (r *stubExpenseRepo) FindBetween(_ context.Context, from, to time.Time) ([]model.Expense, error) {
	var out []model.Expense
	for _, e := range r.expenses {
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *stubExpenseRepo) TotalBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range r.expenses {
		if e.CreatedAt.Before(from) || e.CreatedAt.After(to) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total, nil
}

var _ repository.ExpenseRepository = (*stubExpenseRepo)(nil)
