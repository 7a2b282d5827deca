package api

import (
	"net/http"
	"time"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/auth"
	"github.com/storefront/internal/middleware"
	"github.com/storefront/internal/model"
)

const adminExistsMessage = "Admin with this email already exists"

// Login godoc
// @Summary Admin login
// @Description Authenticate with email and password. Sets the session cookie and returns the token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login credentials"
// @Success 200 {object} model.LoginResponse "Login successful"
// @Failure 400 {object} map[string]interface{} "Missing fields"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/admin/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	session, err := h.authn.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	respondJSON(w, http.StatusOK, model.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		Admin:     session.Admin.Summary(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
	})
}

// Verify godoc
// @Summary Verify session
// @Description Return the claims of the current session token
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Session claims"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /api/admin/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, apperr.New(apperr.KindUnauthenticated, "Authentication required"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"admin":   claims,
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Clear the session cookie
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/admin/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CreateAdmin godoc
// @Summary Create admin
// @Description Create a new admin account. Open while no admin exists, authenticated afterwards
// @Tags Admin
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param request body model.CreateAdminRequest true "Admin details"
// @Success 201 {object} map[string]interface{} "Admin created"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate email"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /api/admin/create [post]
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	req.Normalize()
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	taken, err := h.admins.EmailTaken(ctx, req.Email, "")
	if err != nil {
		respondError(w, err)
		return
	}
	if taken {
		respondError(w, apperr.Conflict(adminExistsMessage))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	admin, err := h.admins.Create(ctx, &model.Admin{
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Admin created successfully",
		"admin":   admin.Summary(),
	})
}

// ListAdmins godoc
// @Summary List admins
// @Description List all admin accounts, newest first
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Admins"
// @Failure 401 {object} map[string]interface{} "Unauthenticated"
// @Router /api/admin [get]
func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if admins == nil {
		admins = []model.Admin{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(admins),
		"admins":  admins,
	})
}

// GetAdmin godoc
// @Summary Get admin
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} map[string]interface{} "Admin"
// @Failure 404 {object} map[string]interface{} "Admin not found"
// @Router /api/admin/{id} [get]
func (h *Handler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.admins.FindByID(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	if admin == nil {
		respondError(w, apperr.NotFound("Admin not found"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"admin":   admin,
	})
}

// UpdateAdmin godoc
// @Summary Update admin
// @Description Update email, name or password. A blank password leaves the current one in place
// @Tags Admin
// @Accept json
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body model.UpdateAdminRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Admin updated"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate email"
// @Failure 404 {object} map[string]interface{} "Admin not found"
// @Router /api/admin/{id} [put]
func (h *Handler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req model.UpdateAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	req.Normalize()
	if req.Email != nil && *req.Email == "" {
		respondError(w, apperr.Validation("email", "email cannot be empty"))
		return
	}
	if err := model.Validate(&req); err != nil {
		respondError(w, err)
		return
	}

	ctx := r.Context()
	upd := model.AdminUpdate{Email: req.Email, Name: req.Name}

	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			respondError(w, err)
			return
		}
		upd.PasswordHash = &hash
	}

	if upd.Email != nil {
		taken, err := h.admins.EmailTaken(ctx, *upd.Email, id)
		if err != nil {
			respondError(w, err)
			return
		}
		if taken {
			respondError(w, apperr.Conflict(adminExistsMessage))
			return
		}
	}

	admin, err := h.admins.Update(ctx, id, upd)
	if err != nil {
		respondError(w, err)
		return
	}
	if admin == nil {
		respondError(w, apperr.NotFound("Admin not found"))
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Admin updated successfully",
		"admin":   admin,
	})
}

// bootstrapOrAuthenticated lets the first admin be created without a
// session. Once any admin exists the gate applies.
func (h *Handler) bootstrapOrAuthenticated(gate *middleware.AuthGate, next http.Handler) http.Handler {
	gated := gate.Authenticate(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := h.admins.Count(r.Context())
		if err != nil {
			respondError(w, err)
			return
		}
		if count == 0 {
			next.ServeHTTP(w, r)
			return
		}
		gated.ServeHTTP(w, r)
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.Name,
		Value:    token,
		Path:     "/",
		Domain:   h.cookies.Domain,
		Expires:  expiresAt,
		MaxAge:   int(auth.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.cookies.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSite,
	})
}
