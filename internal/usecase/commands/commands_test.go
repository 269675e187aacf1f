//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/readstore"
	"legal-storefront/internal/infra/uow"
	"legal-storefront/internal/pkg/clock"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/pkg/ptr"
	"legal-storefront/internal/usecase/commands"
	"legal-storefront/internal/usecase/queries"
	"legal-storefront/internal/usecase/shared"
	"legal-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const userID = "123456789"

type stubIdentity struct {
	user session.User
	err  error
}

func (s stubIdentity) Authenticate(context.Context) (session.User, error) {
	return s.user, s.err
}

type stubTokens struct{}

func (stubTokens) GenerateToken(id, sessionID string) (string, error) {
	return "token-" + id + "-" + sessionID, nil
}

type commandsSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.MockClock
	uow      shared.UnitOfWork
	carts    commands.CartCommands
	checkout commands.CheckoutCommands
	favs     commands.FavoriteCommands
	cartQ    queries.CartQueries
	orderQ   queries.OrderQueries
}

func TestCommands(t *testing.T) {
	suite.Run(t, new(commandsSuite))
}

func (s *commandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	s.uow = uow.NewMemoryUoW(memstore.New())
	cat := readstore.NewCatalog()

	s.carts = commands.NewCartCommands(s.uow, cat)
	s.checkout = commands.NewCheckoutCommands(s.uow, s.clock, "eur")
	s.favs = commands.NewFavoriteCommands(s.uow)
	s.cartQ = queries.NewCartQueries(s.uow)
	s.orderQ = queries.NewOrderQueries(s.uow)
}

func (s *commandsSuite) cart() *queries.CartView {
	v, err := s.cartQ.GetCart(s.ctx)
	s.Require().NoError(err)
	return v
}

func (s *commandsSuite) TestAddItemMessagesAndErrors() {
	res, err := s.carts.AddItem(s.ctx, 1, nil)
	s.Require().NoError(err)
	s.Equal("Manuale di Diritto Civile aggiunto al carrello", res.Message)

	_, err = s.carts.AddItem(s.ctx, 999999, nil)
	s.Require().ErrorIs(err, cart.ErrBookNotFound)
	s.Equal(errs.KindNotFound, errs.KindOf(err))

	_, err = s.carts.AddItem(s.ctx, 4, nil)
	s.Require().ErrorIs(err, cart.ErrBookUnavailable)

	_, err = s.carts.AddItem(s.ctx, 1, ptr.To(0))
	s.Require().ErrorIs(err, cart.ErrInvalidQuantity)

	v := s.cart()
	s.Require().Len(v.Items, 1)
	s.Equal(1, v.Items[0].Quantity)
}

func (s *commandsSuite) TestSetQuantityAndRemove() {
	_, err := s.carts.AddItem(s.ctx, 2, ptr.To(2))
	s.Require().NoError(err)
	id := s.cart().Items[0].ID

	res, err := s.carts.SetQuantity(s.ctx, id, 5)
	s.Require().NoError(err)
	s.Equal("Quantità aggiornata", res.Message)
	s.Equal(5, s.cart().ItemCount)

	res, err = s.carts.SetQuantity(s.ctx, id, 0)
	s.Require().NoError(err)
	s.Equal("Articolo rimosso dal carrello", res.Message)
	s.Empty(s.cart().Items)

	_, err = s.carts.RemoveItem(s.ctx, id)
	s.Require().ErrorIs(err, cart.ErrItemNotFound)
}

func (s *commandsSuite) TestClear() {
	_, err := s.carts.AddItem(s.ctx, 1, nil)
	s.Require().NoError(err)
	_, err = s.carts.AddItem(s.ctx, 3, nil)
	s.Require().NoError(err)

	res, err := s.carts.Clear(s.ctx)
	s.Require().NoError(err)
	s.Equal("Carrello svuotato", res.Message)
	s.Empty(s.cart().Items)
	s.Zero(s.cart().Subtotal)
}

func (s *commandsSuite) TestConcurrentAddsDoNotLoseUpdates() {
	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.carts.AddItem(s.ctx, 1, nil)
			assert.NoError(s.T(), err)
		}()
	}
	wg.Wait()

	v := s.cart()
	s.Require().Len(v.Items, 1)
	s.Equal(n, v.Items[0].Quantity)
}

func (s *commandsSuite) TestCheckoutRoundTrip() {
	_, err := s.carts.AddItem(s.ctx, 1, ptr.To(2))
	s.Require().NoError(err)
	_, err = s.carts.AddItem(s.ctx, 5, nil)
	s.Require().NoError(err)

	subtotal := s.cart().Subtotal
	pi, err := s.checkout.CreatePaymentIntent(s.ctx, userID, money.FromMajor(subtotal))
	s.Require().NoError(err)
	s.Equal("eur", pi.Currency())

	order, err := s.checkout.ConfirmPayment(s.ctx, userID, pi.ID())
	s.Require().NoError(err)
	s.Equal(money.FromMajor(subtotal), order.Total())
	s.Equal(checkout.OrderCompleted, order.Status())
	s.Empty(s.cart().Items)

	_, err = s.checkout.ConfirmPayment(s.ctx, userID, pi.ID())
	s.Require().ErrorIs(err, checkout.ErrIntentConsumed)

	orders, err := s.orderQ.ListOrders(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(order.ID(), orders[0].ID)
}

func (s *commandsSuite) TestConfirmFailuresLeaveCartUntouched() {
	_, err := s.carts.AddItem(s.ctx, 1, nil)
	s.Require().NoError(err)

	_, err = s.checkout.ConfirmPayment(s.ctx, userID, "pi_unknown")
	s.Require().ErrorIs(err, checkout.ErrIntentNotFound)

	pi, err := s.checkout.CreatePaymentIntent(s.ctx, userID, money.FromMajor(1))
	s.Require().NoError(err)
	_, err = s.checkout.ConfirmPayment(s.ctx, userID, pi.ID())
	s.Require().ErrorIs(err, checkout.ErrAmountMismatch)

	_, err = s.checkout.ConfirmPayment(s.ctx, "someone-else", pi.ID())
	s.Require().ErrorIs(err, checkout.ErrIntentNotFound)

	s.Len(s.cart().Items, 1)
	orders, err := s.orderQ.ListOrders(s.ctx, userID)
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *commandsSuite) TestConfirmEmptyCart() {
	pi, err := s.checkout.CreatePaymentIntent(s.ctx, userID, money.FromMajor(10))
	s.Require().NoError(err)

	_, err = s.checkout.ConfirmPayment(s.ctx, userID, pi.ID())
	s.Require().ErrorIs(err, checkout.ErrEmptyCart)
	s.Equal(errs.KindValidationFailed, errs.KindOf(err))
}

func (s *commandsSuite) TestCancelPaymentIntent() {
	_, err := s.carts.AddItem(s.ctx, 1, nil)
	s.Require().NoError(err)
	pi, err := s.checkout.CreatePaymentIntent(s.ctx, userID, money.FromMajor(s.cart().Subtotal))
	s.Require().NoError(err)

	msg, err := s.checkout.CancelPaymentIntent(s.ctx, userID, pi.ID())
	s.Require().NoError(err)
	s.NotEmpty(msg)

	_, err = s.checkout.ConfirmPayment(s.ctx, userID, pi.ID())
	s.Require().ErrorIs(err, checkout.ErrIntentCanceled)
	s.Len(s.cart().Items, 1)

	_, err = s.checkout.CancelPaymentIntent(s.ctx, userID, "pi_unknown")
	s.Require().ErrorIs(err, checkout.ErrIntentNotFound)
}

func (s *commandsSuite) TestFavoritesAreIdempotent() {
	favQ := queries.NewFavoriteQueries(s.uow, readstore.NewCatalog())

	for range 2 {
		msg, err := s.favs.Add(s.ctx, favorite.TypeBook, 3)
		s.Require().NoError(err)
		s.Equal("Aggiunto ai preferiti", msg)
	}
	books, err := favQ.ListBooks(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(books, 1)
	s.Equal(int64(3), books[0].ID)

	msg, err := s.favs.Remove(s.ctx, favorite.TypeMagazine, 1)
	s.Require().NoError(err)
	s.Equal("Rimosso dai preferiti", msg)
}

func TestAuthCommands(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))
	w := uow.NewMemoryUoW(memstore.New())
	sessions := queries.NewSessionQueries(w, session.NewPersistence(session.PersistAlways, 0))
	user := session.User{ID: userID, Name: "Mario Rossi"}

	auth := commands.NewAuthCommands(w, stubIdentity{user: user}, stubTokens{}, clk)

	res, err := auth.Login(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, res.User)

	first, ok, err := sessions.ActiveSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, userID, first.UserID)
	assert.Equal(t, "token-"+userID+"-"+first.SessionID, res.AccessToken)

	current, err := sessions.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Mario Rossi", current.Name)

	require.NoError(t, auth.Logout(ctx))
	current, err = sessions.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	require.NoError(t, auth.Logout(ctx), "logout when anonymous")

	t.Run("login again starts a new session", func(t *testing.T) {
		res, err := auth.Login(ctx)
		require.NoError(t, err)

		second, ok, err := sessions.ActiveSession(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotEqual(t, first.SessionID, second.SessionID)
		assert.Equal(t, "token-"+userID+"-"+second.SessionID, res.AccessToken)
		require.NoError(t, auth.Logout(ctx))
	})

	t.Run("provider failure", func(t *testing.T) {
		failing := commands.NewAuthCommands(w, stubIdentity{err: errors.New("denied")}, stubTokens{}, clk)
		_, err := failing.Login(ctx)
		require.ErrorIs(t, err, session.ErrLoginFailed)
		assert.Equal(t, errs.KindUpstreamFailure, errs.KindOf(err))

		_, ok, err := sessions.ActiveSession(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestScenarioSubtotal(t *testing.T) {
	ctx := context.Background()
	w := uow.NewMemoryUoW(memstore.New())
	cat := catalog.New(nil, nil, []catalog.Book{
		builder.NewBookBuilder().WithID(1).WithPrice(1000).Build(),
		builder.NewBookBuilder().WithID(2).WithPrice(500).Build(),
	})
	carts := commands.NewCartCommands(w, cat)
	co := commands.NewCheckoutCommands(w, clock.NewRealClock(), "eur")
	cartQ := queries.NewCartQueries(w)

	_, err := carts.AddItem(ctx, 1, ptr.To(2))
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, 2, nil)
	require.NoError(t, err)

	v, err := cartQ.GetCart(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 25.00, v.Subtotal, 0.0001)
	assert.Equal(t, 3, v.ItemCount)

	pi, err := co.CreatePaymentIntent(ctx, userID, money.FromMajor(v.Subtotal))
	require.NoError(t, err)
	assert.Equal(t, int64(2500), pi.Amount().Cents())

	order, err := co.ConfirmPayment(ctx, userID, pi.ID())
	require.NoError(t, err)
	assert.Equal(t, "25.00", order.Total().String())
	assert.Equal(t, checkout.OrderCompleted, order.Status())

	v, err = cartQ.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
}
