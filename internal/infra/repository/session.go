package repository

import (
	"context"

	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository/converter"
)

type SessionRepository struct {
	state *memstore.State
}

func NewSessionRepository(state *memstore.State) *SessionRepository {
	return &SessionRepository{state: state}
}

func (r *SessionRepository) Load(_ context.Context) (*session.Session, error) {
	return converter.SessionFromRow(r.state.Session), nil
}

func (r *SessionRepository) Save(_ context.Context, s *session.Session) error {
	r.state.Session = converter.SessionToRow(s)
	return nil
}
