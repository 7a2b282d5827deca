package model

// TokenClaims is the identity attached to an authenticated request.
type TokenClaims struct {
	AdminID   string `json:"id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
