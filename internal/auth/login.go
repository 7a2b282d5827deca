package auth

import (
	"context"
	"time"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/model"
)

// InvalidCredentialsMessage is shared by every login failure so that the
// response never reveals whether the account exists.
const InvalidCredentialsMessage = "Invalid credentials"

// AdminFinder looks up admin accounts by email. A nil admin with a nil
// error means no account matched.
type AdminFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// Session is the result of a successful login.
type Session struct {
	Admin     *model.Admin
	Token     string
	ExpiresAt time.Time
}

// Authenticator runs the email/password login flow.
type Authenticator struct {
	admins AdminFinder
	tokens *TokenService
}

func NewAuthenticator(admins AdminFinder, tokens *TokenService) *Authenticator {
	return &Authenticator{admins: admins, tokens: tokens}
}

// Login looks the admin up by exact email, checks the password and mints a
// session token.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*Session, error) {
	admin, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Login failed", err)
	}
	if admin == nil {
		burnCompare(password)
		return nil, apperr.New(apperr.KindInvalidCredentials, InvalidCredentialsMessage)
	}

	if !CheckPassword(admin.Password, password) {
		return nil, apperr.New(apperr.KindInvalidCredentials, InvalidCredentialsMessage)
	}

	token, expiresAt, err := a.tokens.Issue(admin.ID, admin.Email, true)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Login failed", err)
	}

	return &Session{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}
