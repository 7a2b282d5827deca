package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/storefront/internal/model"
)

const (
	categoryColumns         = `id, name, description, image, is_active, created_at, updated_at`
	categoryConflictMessage = "Category with this name already exists"
)

type CategoryRepository struct {
	db *Database
}

func NewCategoryRepository(db *Database) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	var created model.Category
	query := `
		INSERT INTO categories (name, description, image, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns
	err := r.db.QueryRowxContext(ctx, query, category.Name, category.Description, category.Image, category.IsActive).
		StructScan(&created)
	if err != nil {
		return nil, mapWriteError(err, categoryConflictMessage, "create category")
	}
	return &created, nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	if !isUUID(id) {
		return nil, nil
	}

	var category model.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	err := r.db.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// FindActiveByName looks up an active category by its normalized name.
func (r *CategoryRepository) FindActiveByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1 AND is_active = true`
	err := r.db.GetContext(ctx, &category, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListActiveNames(ctx context.Context) ([]string, error) {
	names := []string{}
	query := `SELECT name FROM categories WHERE is_active = true ORDER BY name`
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list active categories: %w", err)
	}
	return names, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// NameTaken reports whether a category other than excludeID uses name.
func (r *CategoryRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM categories WHERE name = $1 AND id::text <> $2`
	if err := r.db.GetContext(ctx, &count, query, name, excludeID); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	var updated model.Category
	query := `
		UPDATE categories SET name = $1, description = $2, image = $3, is_active = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + categoryColumns
	err = r.db.QueryRowxContext(ctx, query, category.Name, category.Description, category.Image, category.IsActive, time.Now(), id).
		StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err, categoryConflictMessage, "update category")
	}
	return &updated, nil
}

// Delete removes a category and reports whether it existed.
func (r *CategoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !isUUID(id) {
		return false, nil
	}
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
