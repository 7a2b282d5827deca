package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Upload   UploadConfig
	Export   ExportConfig
	Admin    BootstrapAdminConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// IsProduction reports whether secure cookie attributes should be used.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	JWTSecret    string
	CookieName   string
	CookieDomain string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type UploadConfig struct {
	Dir       string
	PublicURL string
	MaxBytes  int64
}

type ExportConfig struct {
	Schedule string
	Dir      string
}

type BootstrapAdminConfig struct {
	Email    string
	Password string
	Name     string
}

// NotifyConfig enables new-order alerts when DiscordWebhook is set.
type NotifyConfig struct {
	DiscordWebhook string
	Username       string
	RateLimitMs    int
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// LoadDotenv loads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
		return
	}
	log.Println("Loaded .env")
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", getEnvAsInt("PORT", 5000)),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
			Environment:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Database:     getEnv("DB_NAME", "storefront"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		Auth: AuthConfig{
			JWTSecret:    strings.TrimSpace(getEnv("JWT_SECRET", "")),
			CookieName:   getEnv("COOKIE_NAME", "adminToken"),
			CookieDomain: getEnv("COOKIE_DOMAIN", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "uploads"),
			PublicURL: strings.TrimRight(getEnv("UPLOAD_PUBLIC_URL", "/uploads"), "/"),
			MaxBytes:  int64(getEnvAsInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		Export: ExportConfig{
			Schedule: getEnv("EXPORT_SCHEDULE", ""),
			Dir:      getEnv("EXPORT_DIR", "exports"),
		},
		Admin: BootstrapAdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Admin"),
		},
		Notify: NotifyConfig{
			DiscordWebhook: strings.TrimSpace(getEnv("DISCORD_ORDER_WEBHOOK", "")),
			Username:       getEnv("DISCORD_USERNAME", "Storefront"),
			RateLimitMs:    getEnvAsInt("DISCORD_RATE_LIMIT_MS", 1000),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimRight(strings.TrimSpace(part), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
