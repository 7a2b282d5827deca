package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/config"
	"github.com/storefront/internal/model"
)

type contextKey string

const ClaimsContextKey contextKey = "admin"

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*model.TokenClaims, error)
}

// TokenExtractor pulls a candidate token out of a request. The boolean is
// false when the request carries no candidate in that location.
type TokenExtractor func(r *http.Request) (string, bool)

// CookieToken reads the token from the named cookie.
func CookieToken(name string) TokenExtractor {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// BearerToken reads the token from an "Authorization: Bearer <token>" header.
func BearerToken() TokenExtractor {
	return func(r *http.Request) (string, bool) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		return token, token != ""
	}
}

// AuthGate guards admin-only routes.
type AuthGate struct {
	tokens     TokenVerifier
	extractors []TokenExtractor
}

// NewAuthGate builds a gate that tries the extractors in order; the first
// one that yields a candidate decides the outcome.
func NewAuthGate(tokens TokenVerifier, extractors ...TokenExtractor) *AuthGate {
	return &AuthGate{tokens: tokens, extractors: extractors}
}

// Authenticate rejects the request with 401 unless it carries a valid token.
func (g *AuthGate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := g.candidate(r)
		if !ok {
			writeError(w, apperr.New(apperr.KindUnauthenticated, "Authentication required"))
			return
		}

		claims, err := g.tokens.Verify(token)
		if err != nil {
			writeError(w, apperr.New(apperr.KindUnauthenticated, "Invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *AuthGate) candidate(r *http.Request) (string, bool) {
	for _, extract := range g.extractors {
		if token, ok := extract(r); ok {
			return token, true
		}
	}
	return "", false
}

// ClaimsFromContext returns the verified claims attached by the gate.
func ClaimsFromContext(ctx context.Context) *model.TokenClaims {
	claims, ok := ctx.Value(ClaimsContextKey).(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}

func writeError(w http.ResponseWriter, err *apperr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Status())
	json.NewEncoder(w).Encode(err.Body())
}

// CORS allows credentialed requests from the configured origins.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger middleware logs requests
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
