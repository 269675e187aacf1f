package commands

import (
	"context"

	"legal-storefront/internal/domain/session"
)

// IdentityProvider stands in for the external sign-in (Google) flow.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (session.User, error)
}

// TokenIssuer signs session tokens for an authenticated user, bound to one login.
type TokenIssuer interface {
	GenerateToken(userID, sessionID string) (string, error)
}
