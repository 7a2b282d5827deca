package api

import (
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/storefront/internal/config"
	"github.com/storefront/internal/middleware"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, gate *middleware.AuthGate, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()
	protect := func(fn http.HandlerFunc) http.Handler {
		return gate.Authenticate(fn)
	}

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	mux.HandleFunc("GET /api/health", h.Health)

	// Admin routes
	mux.HandleFunc("POST /api/admin/login", h.Login)
	mux.HandleFunc("POST /api/admin/logout", h.Logout)
	mux.Handle("GET /api/admin/verify", protect(h.Verify))
	mux.Handle("POST /api/admin/create", h.bootstrapOrAuthenticated(gate, http.HandlerFunc(h.CreateAdmin)))
	mux.Handle("GET /api/admin", protect(h.ListAdmins))
	mux.Handle("GET /api/admin/all", protect(h.ListAdmins))
	mux.Handle("GET /api/admin/{id}", protect(h.GetAdmin))
	mux.Handle("PUT /api/admin/{id}", protect(h.UpdateAdmin))

	// Category routes
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/categories/{id}", h.GetCategory)
	mux.Handle("POST /api/categories", protect(h.CreateCategory))
	mux.Handle("PUT /api/categories/{id}", protect(h.UpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", protect(h.DeleteCategory))

	// Product routes
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /products/getAllProducts", h.GetAllProducts)
	mux.HandleFunc("GET /products/stats/count", h.CountProducts)
	mux.HandleFunc("GET /products/{id}", h.GetProduct)
	mux.Handle("POST /products", protect(h.CreateProduct))
	mux.Handle("PUT /products/{id}", protect(h.UpdateProduct))
	mux.Handle("DELETE /products/{id}", protect(h.DeleteProduct))

	// Order routes
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
	mux.HandleFunc("GET /api/orders/stats/count", h.CountOrders)
	mux.Handle("GET /api/orders", protect(h.ListOrders))
	mux.Handle("GET /export/orders", protect(h.ExportOrders))

	// Uploaded images are only served locally when the public URL is a path
	if prefix := cfg.Upload.PublicURL; strings.HasPrefix(prefix, "/") {
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix+"/", noDirListing(http.FileServer(http.Dir(cfg.Upload.Dir)))))
	}

	// Apply global middleware
	handler := middleware.CORS(cfg.CORS)(middleware.Logger(mux))

	return handler
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
