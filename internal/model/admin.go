package model

import "time"

// Admin is a back-office account. Password holds the bcrypt hash and is
// never serialized.
type Admin struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Summary is the public view of an admin returned after login and creation.
func (a *Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Email: a.Email, Name: a.Name}
}

type AdminSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"max=100"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Email = trim(r.Email)
	r.Name = trim(r.Name)
}

type UpdateAdminRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
}

func (r *UpdateAdminRequest) Normalize() {
	r.Email = trimPtr(r.Email)
	r.Name = trimPtr(r.Name)
	r.Password = trimPtr(r.Password)
}

// AdminUpdate is the storage-level change set. PasswordHash is set only
// when the password is being rotated.
type AdminUpdate struct {
	Email        *string
	Name         *string
	PasswordHash *string
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Admin     AdminSummary `json:"admin"`
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
}
