package queries

//go:generate mockgen -source=session.go -destination=../../../tests/mock/queries/session.go -package=queriesmock

import (
	"context"

	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/usecase/shared"
)

type SessionQueries interface {
	// CurrentUser returns nil when nobody is logged in or the session did
	// not survive according to the persistence policy. It never fails for
	// an anonymous caller.
	CurrentUser(ctx context.Context) (*UserView, error)
	// ActiveSession identifies the current login. It ignores the persistence policy.
	ActiveSession(ctx context.Context) (SessionRef, bool, error)
}

type sessionQueriesImpl struct {
	uow         shared.UnitOfWork
	persistence *session.Persistence
}

func NewSessionQueries(uow shared.UnitOfWork, persistence *session.Persistence) SessionQueries {
	return &sessionQueriesImpl{uow: uow, persistence: persistence}
}

func (q *sessionQueriesImpl) CurrentUser(ctx context.Context) (*UserView, error) {
	u, ok, err := q.load(ctx)
	if err != nil || !ok {
		return nil, err
	}
	if !q.persistence.Survives() {
		return nil, nil
	}
	v := ToUserView(u)
	return &v, nil
}

func (q *sessionQueriesImpl) ActiveSession(ctx context.Context) (SessionRef, bool, error) {
	var ref SessionRef
	var ok bool
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		s, err := tx.Sessions().Load(ctx)
		if err != nil {
			return err
		}
		var u session.User
		if u, ok = s.User(); ok {
			ref = SessionRef{UserID: u.ID, SessionID: s.ID()}
		}
		return nil
	})
	return ref, ok, err
}

func (q *sessionQueriesImpl) load(ctx context.Context) (session.User, bool, error) {
	var (
		u  session.User
		ok bool
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		s, err := tx.Sessions().Load(ctx)
		if err != nil {
			return err
		}
		u, ok = s.User()
		return nil
	})
	return u, ok, err
}
