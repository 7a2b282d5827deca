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
	adminColumns         = `id, email, password, name, created_at, updated_at`
	adminConflictMessage = "Admin with this email already exists"
)

type AdminRepository struct {
	db *Database
}

func NewAdminRepository(db *Database) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts an admin whose Password field already holds a hash.
func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	var created model.Admin
	query := `
		INSERT INTO admins (email, password, name)
		VALUES ($1, $2, $3)
		RETURNING ` + adminColumns
	err := r.db.QueryRowxContext(ctx, query, admin.Email, admin.Password, admin.Name).StructScan(&created)
	if err != nil {
		return nil, mapWriteError(err, adminConflictMessage, "create admin")
	}
	return &created, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	if !isUUID(id) {
		return nil, nil
	}

	var admin model.Admin
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	err := r.db.GetContext(ctx, &admin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by ID: %w", err)
	}
	return &admin, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]model.Admin, error) {
	admins := []model.Admin{}
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

// EmailTaken reports whether another admin (not excludeID) uses email.
func (r *AdminRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM admins WHERE email = $1 AND id::text <> $2`
	if err := r.db.GetContext(ctx, &count, query, email, excludeID); err != nil {
		return false, fmt.Errorf("failed to check admin email: %w", err)
	}
	return count > 0, nil
}

func (r *AdminRepository) Update(ctx context.Context, id string, upd model.AdminUpdate) (*model.Admin, error) {
	admin, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}

	if upd.Email != nil {
		admin.Email = *upd.Email
	}
	if upd.Name != nil {
		admin.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		admin.Password = *upd.PasswordHash
	}

	var updated model.Admin
	query := `
		UPDATE admins SET email = $1, name = $2, password = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + adminColumns
	err = r.db.QueryRowxContext(ctx, query, admin.Email, admin.Name, admin.Password, time.Now(), id).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError(err, adminConflictMessage, "update admin")
	}
	return &updated, nil
}
