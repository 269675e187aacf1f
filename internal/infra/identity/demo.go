package identity

import (
	"context"

	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/pkg/config"
)

// DemoProvider signs everybody in as the configured demo user.
type DemoProvider struct {
	user session.User
}

func NewDemoProvider(cfg config.DemoUserConfig) *DemoProvider {
	return &DemoProvider{user: session.User(cfg)}
}

func (p *DemoProvider) Authenticate(ctx context.Context) (session.User, error) {
	if err := ctx.Err(); err != nil {
		return session.User{}, err
	}
	return p.user, nil
}
