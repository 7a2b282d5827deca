package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, now time.Time) (*TokenService, *time.Time) {
	t.Helper()
	svc, err := NewTokenService(secret)
	require.NoError(t, err)
	clock := now
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, clock := newTestTokenService(t, "test-secret", issued)

	token, expiresAt, err := svc.Issue("admin-1", "owner@shop.test", true)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "owner@shop.test", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, issued.Unix(), claims.IssuedAt)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt)

	*clock = issued.Add(7*24*time.Hour - time.Minute)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	*clock = issued.Add(7*24*time.Hour + time.Second)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestTokenService_Verify_InvalidSignature(t *testing.T) {
	now := time.Now()
	issuer, _ := newTestTokenService(t, "other-secret", now)
	verifier, _ := newTestTokenService(t, "test-secret", now)

	token, _, err := issuer.Issue("admin-1", "owner@shop.test", true)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Verify_RejectsNoneAlgorithm(t *testing.T) {
	svc, _ := newTestTokenService(t, "test-secret", time.Now())

	claims := &Claims{
		AdminID: "admin-1",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc, _ := newTestTokenService(t, "test-secret", time.Now())

	for _, token := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 40)} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}
