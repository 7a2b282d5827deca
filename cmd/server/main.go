package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storefront/internal/api"
	"github.com/storefront/internal/auth"
	"github.com/storefront/internal/catalog"
	"github.com/storefront/internal/config"
	"github.com/storefront/internal/export"
	"github.com/storefront/internal/media"
	"github.com/storefront/internal/middleware"
	"github.com/storefront/internal/model"
	"github.com/storefront/internal/notify"
	"github.com/storefront/internal/scheduler"
	"github.com/storefront/internal/storage"

	_ "github.com/storefront/docs" // swagger docs
)

// @title Storefront API
// @version 1.0
// @description Storefront backend: admin authentication, product catalog with category integrity checks, and customer orders.

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your JWT token with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name adminToken
// @description Session cookie set by /api/admin/login

func main() {
	// Load configuration
	config.LoadDotenv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	log.Println("Connecting to database...")
	db, err := storage.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running migrations...")
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	adminRepo := storage.NewAdminRepository(db)
	categoryRepo := storage.NewCategoryRepository(db)
	productRepo := storage.NewProductRepository(db)
	orderRepo := storage.NewOrderRepository(db)

	// Create default admin if configured
	ctx := context.Background()
	if err := ensureAdmin(ctx, adminRepo, cfg.Admin); err != nil {
		log.Printf("Warning: Failed to create admin: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	images, err := media.NewLocalStore(cfg.Upload)
	if err != nil {
		log.Fatalf("Failed to initialize image store: %v", err)
	}

	// Scheduled order exports
	sched := scheduler.NewScheduler()
	if cfg.Export.Schedule != "" {
		err := sched.AddJob("orders-export", cfg.Export.Schedule, func(ctx context.Context) error {
			orders, err := orderRepo.List(ctx)
			if err != nil {
				return err
			}
			path, err := export.SaveOrders(cfg.Export.Dir, orders, time.Now())
			if err != nil {
				return err
			}
			log.Printf("Exported %d orders to %s", len(orders), path)
			return nil
		})
		if err != nil {
			log.Fatalf("Failed to schedule orders export: %v", err)
		}
	}
	log.Println("Starting scheduler...")
	sched.Start()
	for _, name := range sched.Jobs() {
		if next := sched.NextRun(name); next != nil {
			log.Printf("Job %s next run at %s", name, next.Format(time.RFC3339))
		}
	}

	gate := middleware.NewAuthGate(tokens,
		middleware.CookieToken(cfg.Auth.CookieName),
		middleware.BearerToken(),
	)

	// Initialize API handlers
	handler := api.NewHandler(
		api.Stores{
			Admins:     adminRepo,
			Categories: categoryRepo,
			Products:   productRepo,
			Orders:     orderRepo,
			DB:         db,
		},
		auth.NewAuthenticator(adminRepo, tokens),
		catalog.NewChecker(categoryRepo),
		images,
		api.NewCookieSettings(cfg.Auth, cfg.Server.IsProduction()),
		images.MaxBytes(),
	)

	if discord := notify.NewDiscord(cfg.Notify); discord != nil {
		handler.SetOrderNotifier(discord)
		log.Printf("Order notifications enabled: %s", discord.Webhook())
	}

	// Setup router
	router := api.NewRouter(handler, gate, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Stop scheduler
	sched.Stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// ensureAdmin creates the configured admin account unless it already exists.
func ensureAdmin(ctx context.Context, admins *storage.AdminRepository, cfg config.BootstrapAdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	existing, err := admins.FindByEmail(ctx, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin ready: %s", existing.Email)
		return nil
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	admin, err := admins.Create(ctx, &model.Admin{Email: cfg.Email, Password: hash, Name: cfg.Name})
	if err != nil {
		return err
	}
	log.Printf("Admin created: %s", admin.Email)
	return nil
}
