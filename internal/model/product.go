package model

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID        string         `json:"id" db:"id"`
	ProductID string         `json:"productId" db:"product_id"`
	Name      string         `json:"name" db:"name"`
	Price     float64        `json:"price" db:"price"`
	Image     string         `json:"image" db:"image"`
	Category  string         `json:"category" db:"category"`
	Flavor    pq.StringArray `json:"flavor" db:"flavor"`
	Weight    string         `json:"weight" db:"weight"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

// ProductInput carries the raw fields of a product write, whether they
// arrived as a multipart form or as JSON. A nil field was not supplied.
type ProductInput struct {
	Name     *string
	Category *string
	Price    *string
	Weight   *string
	Flavor   []string
}

// ProductUpdate is the storage-level change set for a product.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Category *string
	Image    *string
	Weight   *string
	Flavor   []string
}
