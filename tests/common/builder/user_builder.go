//go:build unit || e2e

package builder

import (
	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/usecase/queries"
)

type UserBuilder struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

// NewUserBuilder starts from the demo user of config.NewTestConfig.
func NewUserBuilder() *UserBuilder {
	u := config.NewTestConfig().Simulation.User
	return &UserBuilder{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Picture: u.Picture,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() session.User {
	return session.User{ID: u.ID, Name: u.Name, Email: u.Email, Picture: u.Picture}
}

func (u *UserBuilder) BuildView() queries.UserView {
	return queries.ToUserView(u.BuildDomain())
}
