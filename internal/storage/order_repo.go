package storage

import (
	"context"
	"fmt"

	"github.com/storefront/internal/model"
)

const orderColumns = `id, name, email, phone, address, payment_method, cart_items, total_amount, created_at, updated_at`

type OrderRepository struct {
	db *Database
}

func NewOrderRepository(db *Database) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	var order model.Order
	query := `
		INSERT INTO orders (name, email, phone, address, payment_method, cart_items, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + orderColumns
	err := r.db.QueryRowxContext(ctx, query,
		req.Name, req.Email, req.Phone, req.Address, req.PaymentMethod, model.CartItems(req.CartItems), req.TotalAmount,
	).StructScan(&order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// List returns all orders, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
