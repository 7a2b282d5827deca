package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/storefront/internal/model"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{
			ID:            "order-1",
			Name:          "Ann",
			Email:         "ann@shop.test",
			PaymentMethod: model.PaymentMethodCOD,
			CartItems: model.CartItems{
				{ProductID: "PROD-1", Name: "Bar", Price: 2.5, Count: 2, Flavor: []string{"mint", "cocoa"}},
				{ProductID: "PROD-2", Name: "Shake", Price: 4, Count: 1},
			},
			TotalAmount: 9,
			CreatedAt:   time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestWriteOrders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, sampleOrders()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(OrdersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Order ID", rows[0][0])
	assert.Equal(t, "order-1", rows[1][0])
	assert.Equal(t, "2026-03-01T09:30:00Z", rows[1][1])
	assert.Equal(t, "cod", rows[1][6])
	assert.Equal(t, "Bar x2 (mint, cocoa); Shake x1", rows[1][7])
	assert.Equal(t, "3", rows[1][8])
	assert.Equal(t, "9", rows[1][9])
}

func TestSaveOrders(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveOrders(dir, sampleOrders(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, path, "orders-20260302-000000.xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{OrdersSheet}, f.GetSheetList())
}

func TestWriteOrders_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(OrdersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
