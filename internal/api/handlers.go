package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/auth"
	"github.com/storefront/internal/catalog"
	"github.com/storefront/internal/config"
	"github.com/storefront/internal/media"
	"github.com/storefront/internal/model"
)

// AdminStore persists admin accounts.
type AdminStore interface {
	auth.AdminFinder
	Create(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Count(ctx context.Context) (int, error)
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	Update(ctx context.Context, id string, upd model.AdminUpdate) (*model.Admin, error)
}

// CategoryStore persists categories.
type CategoryStore interface {
	catalog.CategoryLookup
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProductStore persists products. Lookups by id fall back to the
// human-facing product ID.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, category string) ([]model.Product, error)
	ListNewest(ctx context.Context) ([]model.Product, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id string, upd *model.ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)
}

// OrderStore persists customer orders.
type OrderStore interface {
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Count(ctx context.Context) (int, error)
}

// OrderNotifier is told about every placed order. Failures never affect
// the customer response.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, order *model.Order) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores groups the persistence collaborators of the API.
type Stores struct {
	Admins     AdminStore
	Categories CategoryStore
	Products   ProductStore
	Orders     OrderStore
	DB         Pinger
}

// CookieSettings controls the attributes of the session cookie.
type CookieSettings struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// NewCookieSettings uses Secure + SameSite=None in production so the admin
// frontend can live on another origin, and Lax otherwise.
func NewCookieSettings(cfg config.AuthConfig, production bool) CookieSettings {
	settings := CookieSettings{
		Name:     cfg.CookieName,
		Domain:   cfg.CookieDomain,
		SameSite: http.SameSiteLaxMode,
	}
	if production {
		settings.Secure = true
		settings.SameSite = http.SameSiteNoneMode
	}
	return settings
}

// Handler contains all API handlers
type Handler struct {
	admins      AdminStore
	categories  CategoryStore
	products    ProductStore
	orders      OrderStore
	db          Pinger
	authn       *auth.Authenticator
	checker     *catalog.Checker
	images      media.Store
	notifier    OrderNotifier
	cookies     CookieSettings
	uploadLimit int64
	now         func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(
	stores Stores,
	authn *auth.Authenticator,
	checker *catalog.Checker,
	images media.Store,
	cookies CookieSettings,
	uploadLimit int64,
) *Handler {
	return &Handler{
		admins:      stores.Admins,
		categories:  stores.Categories,
		products:    stores.Products,
		orders:      stores.Orders,
		db:          stores.DB,
		authn:       authn,
		checker:     checker,
		images:      images,
		cookies:     cookies,
		uploadLimit: uploadLimit,
		now:         time.Now,
	}
}

// SetOrderNotifier enables new-order alerts.
func (h *Handler) SetOrderNotifier(n OrderNotifier) {
	h.notifier = n
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, err error) {
	appErr := apperr.As(err)
	if appErr.Kind == apperr.KindInternal {
		log.Printf("Internal error: %v", err)
	}
	respondJSON(w, appErr.Status(), appErr.Body())
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("", "Invalid request body")
	}
	return nil
}

// Health godoc
// @Summary Health check
// @Description Check if the API and its database are reachable
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Failure 503 {object} map[string]interface{} "Database unreachable"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Printf("Health check: database ping failed: %v", err)
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "degraded",
			"database": "down",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"database": "up",
	})
}
