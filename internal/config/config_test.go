package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "   ")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "adminToken", cfg.Auth.CookieName)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
	assert.False(t, cfg.Server.IsProduction())
	assert.Empty(t, cfg.Notify.DiscordWebhook)
	assert.Equal(t, 1000, cfg.Notify.RateLimitMs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://shop.test/, http://localhost:5173 ,,")
	t.Setenv("UPLOAD_PUBLIC_URL", "https://cdn.shop.test/img/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://shop.test", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://cdn.shop.test/img", cfg.Upload.PublicURL)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "shop", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", cfg.DSN())
}
