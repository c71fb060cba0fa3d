package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Milansanjaya/shoe-pos-backend/internal/model"
	"github.com/Milansanjaya/shoe-pos-backend/internal/service"
)

func TestReserve(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	variant, err := inv.Reserve(context.Background(), nil, runner.ID, "42", "Black", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, variant.Stock, "returned variant carries post-decrement stock")
	assert.Equal(t, 2, products.stockOf(runner.ID, "42", "Black"))
}

func TestReserveTrimsInput(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	_, err := inv.Reserve(context.Background(), nil, runner.ID, "  42", "Black  ", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, products.stockOf(runner.ID, "42", "Black"))
}

func TestReserveIsCaseSensitive(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5})

	_, err := inv.Reserve(context.Background(), nil, runner.ID, "42", "black", 1)
	assert.ErrorIs(t, err, service.ErrVariantNotFound)
}

func TestReserveInsufficientStock(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 2})

	_, err := inv.Reserve(context.Background(), nil, runner.ID, "42", "Black", 3)
	assert.ErrorIs(t, err, service.ErrInsufficientStock)
	assert.Equal(t, 2, products.stockOf(runner.ID, "42", "Black"), "failed reserve leaves stock alone")
}

func TestReserveExactStockDrainsToZero(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 4})

	variant, err := inv.Reserve(context.Background(), nil, runner.ID, "42", "Black", 4)
	require.NoError(t, err)
	assert.Equal(t, 0, variant.Stock)

	_, err = inv.Reserve(context.Background(), nil, runner.ID, "42", "Black", 1)
	assert.ErrorIs(t, err, service.ErrInsufficientStock)
}

func TestReserveByBarcode(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 5, Barcode: "0000042"})

	variant, err := inv.ReserveByBarcode(context.Background(), nil, " 0000042 ", 2)
	require.NoError(t, err)
	assert.Equal(t, runner.ID, variant.ProductID)
	assert.Equal(t, 3, variant.Stock)

	_, err = inv.ReserveByBarcode(context.Background(), nil, "no-such-code", 1)
	assert.ErrorIs(t, err, service.ErrVariantNotFound)
}

func TestRestore(t *testing.T) {
	products := newStubProductRepo()
	inv := service.NewInventoryService(products)

	runner := products.addProduct("Street Runner", "1000", "600",
		model.Variant{Size: "42", Color: "Black", Stock: 1})

	variant, err := inv.Restore(context.Background(), nil, runner.ID, "42", "Black", 7)
	require.NoError(t, err)
	assert.Equal(t, 8, variant.Stock)
	assert.Equal(t, 8, products.stockOf(runner.ID, "42", "Black"))
}
