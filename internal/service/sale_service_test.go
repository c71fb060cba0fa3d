package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Milansanjaya/shoe-pos-backend/internal/dto"
	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/repository"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
)

func buildSaleSvc() (service.SaleService, *stubSaleRepo, *stubProductRepo, *stubCounterRepo) {
	products := newStubProductRepo()
	sales := newStubSaleRepo()
	counters := newStubCounterRepo()
	inventory := service.NewInventoryService(products)
	svc := service.NewSaleService(sales, products, counters, inventory, nil)
	return svc, sales, products, counters
}

func TestCreateSale(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()
	cashier := uuid.New()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	resp, err := svc.CreateSale(context.Background(), cashier, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-00001", resp.InvoiceNumber)
	assert.True(t, resp.TotalAmount.Equal(d("2000")))
	assert.True(t, resp.DiscountAmount.Equal(d("0")))
	assert.True(t, resp.GrandTotal.Equal(d("2000")))
	assert.True(t, resp.TotalProfit.Equal(d("800")))
	assert.Equal(t, model.PaymentCash, resp.PaymentMethod, "payment method defaults to Cash")
	assert.Equal(t, model.DiscountNone, resp.DiscountType)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Street Runner", resp.Items[0].Product)
	assert.True(t, resp.Items[0].Subtotal.Equal(d("2000")))

	assert.Equal(t, 3, products.stockOf(runner.ID, "42", "Black"))
	assert.Equal(t, 1, sales.count())
}

func TestCreateSalePercentageDiscount(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 2},
		},
		DiscountType:  model.DiscountPercentage,
		DiscountValue: d("10"),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalAmount.Equal(d("2000")))
	assert.True(t, resp.DiscountAmount.Equal(d("200")))
	assert.True(t, resp.GrandTotal.Equal(d("1800")))
	assert.True(t, resp.TotalProfit.Equal(d("600")), "discount comes out of profit")
}

func TestCreateSaleTrimsSizeAndColor(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: " 42 ", Color: " Black ", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", resp.Items[0].Size)
	assert.Equal(t, "Black", resp.Items[0].Color)
}

func TestCreateSaleRejections(t *testing.T) {
	svc, sales, products, counters := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 2})

	tests := []struct {
		name    string
		req     dto.CreateSaleRequest
		wantErr error
	}{
		{
			name:    "empty cart",
			req:     dto.CreateSaleRequest{},
			wantErr: service.ErrNoItems,
		},
		{
			name: "zero quantity",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 0},
			}},
			wantErr: service.ErrInvalidQuantity,
		},
		{
			name: "negative quantity",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: -1},
			}},
			wantErr: service.ErrInvalidQuantity,
		},
		{
			name: "unknown product",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: uuid.NewString(), Size: "42", Color: "Black", Quantity: 1},
			}},
			wantErr: service.ErrProductNotFound,
		},
		{
			name: "malformed product id",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: "not-a-uuid", Size: "42", Color: "Black", Quantity: 1},
			}},
			wantErr: service.ErrProductNotFound,
		},
		{
			name: "unknown variant",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "45", Color: "Black", Quantity: 1},
			}},
			wantErr: service.ErrVariantNotFound,
		},
		{
			name: "insufficient stock",
			req: dto.CreateSaleRequest{Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 3},
			}},
			wantErr: service.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSale(context.Background(), uuid.New(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Every rejection above must leave the store untouched.
	assert.Equal(t, 0, sales.count(), "no sale persisted")
	assert.Equal(t, 2, products.stockOf(runner.ID, "42", "Black"), "stock unchanged")
	assert.Equal(t, int64(0), counters.current(repository.CounterInvoice), "no invoice number consumed")
}

func TestCreateSaleInsufficientStockConsumesNoInvoiceNumber(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 1})

	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 5},
		},
	})
	require.ErrorIs(t, err, service.ErrInsufficientStock)

	// The next successful sale still gets the first invoice number.
	resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-00001", resp.InvoiceNumber)
}

func TestCreateSaleInvoiceNumbersAreSequential(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 10})

	want := []string{"INV-00001", "INV-00002", "INV-00003"}
	for _, invoice := range want {
		resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
			Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, invoice, resp.InvoiceNumber)
	}
}

func TestCreateSaleMultiItemFailureLeavesNoTrace(t *testing.T) {
	svc, sales, products, counters := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 10})
	boot := products.addProduct("Trail Boot", "2500", "1500",
		model.Variant{Size: "43", Color: "Brown", Stock: 1})

	// The journal stands in for the database transaction: every stock
	// movement the engine makes through the tx-scoped repository methods is
	// undone on failure, exactly as a rollback would. A mutation made outside
	// those methods would survive the rollback and trip the assertions below.
	products.beginTx()
	_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 2},
			{Product: boot.ID.String(), Size: "43", Color: "Brown", Quantity: 5},
		},
	})
	require.ErrorIs(t, err, service.ErrInsufficientStock)
	products.rollbackTx()

	assert.Equal(t, 0, sales.count(), "failed cart persists nothing")
	assert.Equal(t, int64(0), counters.current(repository.CounterInvoice))
	assert.Equal(t, 10, products.stockOf(runner.ID, "42", "Black"),
		"first item's reservation is rolled back with the transaction")
	assert.Equal(t, 1, products.stockOf(boot.ID, "43", "Brown"))
}

func TestCreateSaleConcurrent(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()

	const stock = 30
	const attempts = 50
	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: stock})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		invoices  = make(map[string]bool)
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
				Items: []dto.SaleItemRequest{
					{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 1},
				},
			})
			if err != nil {
				assert.ErrorIs(t, err, service.ErrInsufficientStock)
				return
			}
			mu.Lock()
			succeeded++
			invoices[resp.InvoiceNumber] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded, "exactly one sale per unit of stock")
	assert.Equal(t, 0, products.stockOf(runner.ID, "42", "Black"), "stock never goes negative")
	assert.Len(t, invoices, succeeded, "invoice numbers are unique")
	assert.Equal(t, succeeded, sales.count())
}

func TestCreateSaleByBarcode(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5, Barcode: "0000123"})

	resp, err := svc.CreateSaleByBarcode(context.Background(), uuid.New(), dto.ScanSaleRequest{
		Barcode: "0000123",
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity, "quantity defaults to one")
	assert.Equal(t, "Street Runner", resp.Items[0].Product)
	assert.True(t, resp.GrandTotal.Equal(d("1000")))
	assert.True(t, resp.TotalProfit.Equal(d("400")))
	assert.Equal(t, model.DiscountNone, resp.DiscountType, "scan path carries no discount")
}

func TestCreateSaleByBarcodeRejections(t *testing.T) {
	svc, sales, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 2, Barcode: "0000123"})

	_, err := svc.CreateSaleByBarcode(context.Background(), uuid.New(), dto.ScanSaleRequest{
		Barcode: "9999999",
	})
	assert.ErrorIs(t, err, service.ErrVariantNotFound)

	_, err = svc.CreateSaleByBarcode(context.Background(), uuid.New(), dto.ScanSaleRequest{
		Barcode: "0000123", Quantity: -2,
	})
	assert.ErrorIs(t, err, service.ErrInvalidQuantity)

	_, err = svc.CreateSaleByBarcode(context.Background(), uuid.New(), dto.ScanSaleRequest{
		Barcode: "0000123", Quantity: 3,
	})
	assert.ErrorIs(t, err, service.ErrInsufficientStock)

	assert.Equal(t, 0, sales.count())
	assert.Equal(t, 2, products.stockOf(runner.ID, "42", "Black"))
}

func TestGetSaleNotFound(t *testing.T) {
	svc, _, _, _ := buildSaleSvc()

	_, err := svc.GetSale(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrSaleNotFound)
}

func TestListSalesRejectsBadDates(t *testing.T) {
	svc, _, _, _ := buildSaleSvc()

	_, err := svc.ListSales(context.Background(), dto.SaleFilter{From: "31-12-2025"})
	assert.Error(t, err)

	_, err = svc.ListSales(context.Background(), dto.SaleFilter{To: "not-a-date"})
	assert.Error(t, err)
}

func TestListSalesFiltersByPaymentMethod(t *testing.T) {
	svc, _, products, _ := buildSaleSvc()

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 10})

	for _, method := range []string{model.PaymentCash, model.PaymentCard, model.PaymentCash} {
		_, err := svc.CreateSale(context.Background(), uuid.New(), dto.CreateSaleRequest{
			Items: []dto.SaleItemRequest{
				{Product: runner.ID.String(), Size: "42", Color: "Black", Quantity: 1},
			},
			PaymentMethod: method,
		})
		require.NoError(t, err)
	}

	cash, err := svc.ListSales(context.Background(), dto.SaleFilter{PaymentMethod: model.PaymentCash})
	require.NoError(t, err)
	assert.Len(t, cash, 2)

	card, err := svc.ListSales(context.Background(), dto.SaleFilter{PaymentMethod: model.PaymentCard})
	require.NoError(t, err)
	assert.Len(t, card, 1)

	all, err := svc.ListSales(context.Background(), dto.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
