package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "cod"
	PaymentMethodBank PaymentMethod = "bank"
)

type Order struct {
	ID            string        `json:"id" db:"id"`
	Name          string        `json:"name" db:"name"`
	Email         string        `json:"email" db:"email"`
	Phone         string        `json:"phone" db:"phone"`
	Address       string        `json:"address" db:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	CartItems     CartItems     `json:"cartItems" db:"cart_items"`
	TotalAmount   float64       `json:"totalAmount" db:"total_amount"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

type CartItem struct {
	ProductID string   `json:"productId" validate:"required"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Count     int      `json:"count"`
	Flavor    []string `json:"flavor"`
}

type CartItems []CartItem

func (c CartItems) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

func (c *CartItems) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, c)
}

type CreateOrderRequest struct {
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cod bank"`
	CartItems     []CartItem    `json:"cartItems" validate:"dive"`
	TotalAmount   float64       `json:"totalAmount"`
}

func (r *CreateOrderRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Email = trim(r.Email)
	r.Phone = trim(r.Phone)
	r.Address = trim(r.Address)
	r.PaymentMethod = PaymentMethod(trim(string(r.PaymentMethod)))
}
