package usecase

import (
	"context"
	"log/slog"

	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/pkg/jwt"
	"legal-storefront/internal/usecase/queries"
)

var ErrSessionRequired = errs.NewKind(errs.KindUnauthenticated, "Accesso richiesto")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken returns the user id of a token that is valid and was
	// issued for the current login. Tokens from any earlier login are rejected,
	// even when the same user has logged in again since.
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	sessions   queries.SessionQueries
}

func NewTokenValidator(jwtService *jwt.Service, sessions queries.SessionQueries) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		slog.Debug("session token rejected", "error", err.Error())
		return "", ErrSessionRequired
	}

	active, ok, err := t.sessions.ActiveSession(ctx)
	if err != nil {
		return "", err
	}
	if !ok || active.UserID != claims.UserID || active.SessionID != claims.ID {
		return "", ErrSessionRequired
	}
	return claims.UserID, nil
}
