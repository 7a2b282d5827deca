// Package export renders order data as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/storefront/internal/model"
)

const OrdersSheet = "Orders"

var orderHeaders = []string{
	"Order ID", "Placed At", "Name", "Email", "Phone", "Address",
	"Payment Method", "Items", "Item Count", "Total Amount",
}

// OrdersWorkbook builds a workbook with one row per order.
func OrdersWorkbook(orders []model.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(OrdersSheet, "A1", &orderHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, order := range orders {
		row := []interface{}{
			order.ID,
			order.CreatedAt.UTC().Format(time.RFC3339),
			order.Name,
			order.Email,
			order.Phone,
			order.Address,
			string(order.PaymentMethod),
			describeItems(order.CartItems),
			itemCount(order.CartItems),
			order.TotalAmount,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(OrdersSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write order %s: %w", order.ID, err)
		}
	}

	return f, nil
}

// WriteOrders streams the orders workbook to w.
func WriteOrders(w io.Writer, orders []model.Order) error {
	f, err := OrdersWorkbook(orders)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveOrders writes the workbook into dir as orders-<timestamp>.xlsx and
// returns the file path.
func SaveOrders(dir string, orders []model.Order, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	f, err := OrdersWorkbook(orders)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, "orders-"+now.UTC().Format("20060102-150405")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func describeItems(items model.CartItems) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		desc := fmt.Sprintf("%s x%d", item.Name, item.Count)
		if len(item.Flavor) > 0 {
			desc += " (" + strings.Join(item.Flavor, ", ") + ")"
		}
		parts = append(parts, desc)
	}
	return strings.Join(parts, "; ")
}

func itemCount(items model.CartItems) int {
	total := 0
	for _, item := range items {
		total += item.Count
	}
	return total
}
