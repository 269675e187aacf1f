package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"

	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/pkg/clock"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	User        session.User
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context) (*LoginResult, error)
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	identity IdentityProvider
	tokens   TokenIssuer
	clock    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, identity IdentityProvider, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:      uow,
		identity: identity,
		tokens:   tokens,
		clock:    clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context) (*LoginResult, error) {
	u, err := a.identity.Authenticate(ctx)
	if err != nil {
		slog.Warn("identity provider rejected login", "error", err.Error())
		return nil, session.ErrLoginFailed
	}

	var token string
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().Load(ctx)
		if err != nil {
			return err
		}
		sessionID := s.Login(u, a.clock.Now())
		token, err = a.tokens.GenerateToken(u.ID, sessionID)
		if err != nil {
			return errs.Mark(err, ErrTokenGeneration)
		}
		return tx.Sessions().Save(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user logged in", "user_id", u.ID)
	return &LoginResult{User: u, AccessToken: token}, nil
}

// Logout always succeeds for an anonymous session.
func (a *authCommandsImpl) Logout(ctx context.Context) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().Load(ctx)
		if err != nil {
			return err
		}
		if u, ok := s.User(); ok {
			slog.Info("user logged out", "user_id", u.ID)
		}
		s.Logout()
		return tx.Sessions().Save(ctx, s)
	})
}
