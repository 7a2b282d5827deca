package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/storefront/internal/model"
)

const (
	productColumns         = `id, product_id, name, price, image, category, flavor, weight, created_at, updated_at`
	productConflictMessage = "A product with this product ID already exists"
)

type ProductRepository struct {
	db *Database
}

func NewProductRepository(db *Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	flavor := product.Flavor
	if flavor == nil {
		flavor = pq.StringArray{}
	}

	var created model.Product
	query := `
		INSERT INTO products (product_id, name, price, image, category, flavor, weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns
	err := r.db.QueryRowxContext(ctx, query,
		product.ProductID, product.Name, product.Price, product.Image, product.Category, flavor, product.Weight,
	).StructScan(&created)
	if err != nil {
		return nil, mapWriteError(err, productConflictMessage, "create product")
	}
	return &created, nil
}

// FindByID resolves a product by its primary key, falling back to the
// human-facing product ID.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	if isUUID(id) {
		product, err := r.findOne(ctx, `id = $1`, id)
		if err != nil || product != nil {
			return product, err
		}
	}
	return r.findOne(ctx, `product_id = $1`, id)
}

func (r *ProductRepository) findOne(ctx context.Context, where string, arg string) (*model.Product, error) {
	var product model.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where
	err := r.db.GetContext(ctx, &product, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// List returns products, optionally restricted to one category, grouped by
// category and newest first.
func (r *ProductRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	products := []model.Product{}
	var err error
	if category != "" {
		query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &products, query, category)
	} else {
		query := `SELECT ` + productColumns + ` FROM products ORDER BY category ASC, created_at DESC`
		err = r.db.SelectContext(ctx, &products, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListNewest returns every product, newest first.
func (r *ProductRepository) ListNewest(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, upd *model.ProductUpdate) (*model.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Image != nil {
		product.Image = *upd.Image
	}
	if upd.Weight != nil {
		product.Weight = *upd.Weight
	}
	if upd.Flavor != nil {
		product.Flavor = upd.Flavor
	}
	if product.Flavor == nil {
		product.Flavor = pq.StringArray{}
	}

	var updated model.Product
	query := `
		UPDATE products SET name = $1, price = $2, category = $3, image = $4, weight = $5, flavor = $6, updated_at = $7
		WHERE id = $8
		RETURNING ` + productColumns
	err = r.db.QueryRowxContext(ctx, query,
		product.Name, product.Price, product.Category, product.Image, product.Weight, product.Flavor, time.Now(), product.ID,
	).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err, productConflictMessage, "update product")
	}
	return &updated, nil
}

// Delete removes a product by primary key or product ID and returns it.
func (r *ProductRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}

	var removed model.Product
	query := `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns
	err = r.db.QueryRowxContext(ctx, query, product.ID).StructScan(&removed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return &removed, nil
}
