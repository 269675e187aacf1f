//go:build unit

package uow_test

import (
	"context"
	"testing"
	"time"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/uow"
	"legal-storefront/internal/usecase/shared"
	"legal-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type memoryUoWSuite struct {
	suite.Suite
	ctx context.Context
	uow shared.UnitOfWork
	now time.Time
}

func TestMemoryUoW(t *testing.T) {
	suite.Run(t, new(memoryUoWSuite))
}

func (s *memoryUoWSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = uow.NewMemoryUoW(memstore.New())
	s.now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
}

func (s *memoryUoWSuite) addBook(book int64, qty int) {
	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}
		if _, err := l.Add(builder.NewBookBuilder().WithID(book).WithPrice(1000).Build(), qty); err != nil {
			return err
		}
		return tx.Carts().Save(ctx, l)
	})
	s.Require().NoError(err)
}

func (s *memoryUoWSuite) TestCartRoundTrip() {
	s.addBook(1, 2)
	s.addBook(1, 1)

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		l, err := tx.Carts().Load(ctx)
		require.NoError(s.T(), err)
		items := l.Items()
		require.Len(s.T(), items, 1)
		assert.Equal(s.T(), 3, items[0].Quantity)
		assert.Equal(s.T(), money.FromCents(1000), items[0].Price)
		assert.Equal(s.T(), int64(1), l.LastID())
		return nil
	}))
}

func (s *memoryUoWSuite) TestFailedUnitLeavesStateUntouched() {
	s.addBook(1, 1)

	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}
		l.Clear()
		if err := tx.Carts().Save(ctx, l); err != nil {
			return err
		}
		return cart.ErrItemNotFound
	})
	s.Require().ErrorIs(err, cart.ErrItemNotFound)

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		l, err := tx.Carts().Load(ctx)
		require.NoError(s.T(), err)
		assert.Len(s.T(), l.Items(), 1)
		return nil
	}))
}

func (s *memoryUoWSuite) TestIntentsAndOrders() {
	s.addBook(1, 2)

	var intentID string
	err := s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		pi, err := checkout.NewPaymentIntent("u1", money.FromCents(2000), "eur", s.now)
		if err != nil {
			return err
		}
		intentID = pi.ID()
		return tx.PaymentIntents().Save(ctx, pi)
	})
	s.Require().NoError(err)

	var orderID string
	err = s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		pi, err := tx.PaymentIntents().FindByID(ctx, intentID)
		if err != nil {
			return err
		}
		assert.Equal(s.T(), money.FromCents(2000), pi.Amount())
		assert.Equal(s.T(), s.now, pi.CreatedAt())

		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}
		order, err := pi.Confirm("u1", l.Items(), s.now)
		if err != nil {
			return err
		}
		orderID = order.ID()
		if err := tx.PaymentIntents().Save(ctx, pi); err != nil {
			return err
		}
		return tx.Orders().Create(ctx, order)
	})
	s.Require().NoError(err)

	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		pi, err := tx.PaymentIntents().FindByID(ctx, intentID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), checkout.IntentSucceeded, pi.Status())

		_, err = tx.PaymentIntents().FindByID(ctx, "pi_missing")
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
		return nil
	}))

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), money.FromCents(2000), o.Total())
		assert.Equal(s.T(), checkout.OrderCompleted, o.Status())
		assert.Equal(s.T(), intentID, o.PaymentIntentID())
		require.Len(s.T(), o.Items(), 1)
		assert.Equal(s.T(), 2, o.Items()[0].Quantity)

		orders, err := tx.Orders().ListByUser(ctx, "u1")
		require.NoError(s.T(), err)
		assert.Len(s.T(), orders, 1)

		orders, err = tx.Orders().ListByUser(ctx, "someone-else")
		require.NoError(s.T(), err)
		assert.Empty(s.T(), orders)

		_, err = tx.Orders().FindByID(ctx, "missing")
		assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
		return nil
	}))
}

func (s *memoryUoWSuite) TestSessionAndFavorites() {
	var sessionID string
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, err := tx.Sessions().Load(ctx)
		if err != nil {
			return err
		}
		sessionID = sess.Login(session.User{ID: "u1", Name: "Mario Rossi"}, s.now)
		if err := tx.Sessions().Save(ctx, sess); err != nil {
			return err
		}

		reg, err := tx.Favorites().Load(ctx)
		if err != nil {
			return err
		}
		reg.Add(favorite.TypeMagazine, 4)
		reg.Add(favorite.TypeMagazine, 1)
		return tx.Favorites().Save(ctx, reg)
	}))

	s.Require().NoError(s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.ReadTx) error {
		sess, err := tx.Sessions().Load(ctx)
		require.NoError(s.T(), err)
		u, ok := sess.User()
		require.True(s.T(), ok)
		assert.Equal(s.T(), "Mario Rossi", u.Name)
		assert.Equal(s.T(), s.now, sess.Since())
		assert.Equal(s.T(), sessionID, sess.ID())

		reg, err := tx.Favorites().Load(ctx)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), []int64{4, 1}, reg.IDs(favorite.TypeMagazine))
		return nil
	}))
}
