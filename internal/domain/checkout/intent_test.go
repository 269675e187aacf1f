//go:build unit

package checkout_test

import (
	"strings"
	"testing"
	"time"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func cartWith(t *testing.T) *cart.Ledger {
	t.Helper()
	l := cart.NewLedger()
	_, err := l.Add(builder.NewBookBuilder().WithID(1).WithPrice(1000).Build(), 2)
	require.NoError(t, err)
	_, err = l.Add(builder.NewBookBuilder().WithID(2).WithPrice(500).Build(), 1)
	require.NoError(t, err)
	return l
}

func TestNewPaymentIntent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		pi, err := checkout.NewPaymentIntent("u1", money.FromMajor(25), "EUR", now)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(pi.ID(), "pi_"))
		assert.True(t, strings.HasPrefix(pi.ClientSecret(), pi.ID()+"_secret_"))
		assert.Equal(t, int64(2500), pi.Amount().Cents())
		assert.Equal(t, "eur", pi.Currency())
		assert.Equal(t, checkout.IntentRequiresConfirmation, pi.Status())
	})

	t.Run("ids are unique", func(t *testing.T) {
		a, err := checkout.NewPaymentIntent("u1", 100, "eur", now)
		require.NoError(t, err)
		b, err := checkout.NewPaymentIntent("u1", 100, "eur", now)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID(), b.ID())
	})

	for _, amount := range []money.Money{0, -1} {
		_, err := checkout.NewPaymentIntent("u1", amount, "eur", now)
		require.ErrorIs(t, err, checkout.ErrInvalidAmount)
		assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
	}

	_, err := checkout.NewPaymentIntent("u1", checkout.MaxAmount, "eur", now)
	require.NoError(t, err)
	_, err = checkout.NewPaymentIntent("u1", checkout.MaxAmount+1, "eur", now)
	require.ErrorIs(t, err, checkout.ErrAmountTooLarge)
	assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
}

func TestPaymentIntentConfirm(t *testing.T) {
	t.Run("scenario produces completed order with cart total", func(t *testing.T) {
		l := cartWith(t)
		require.Equal(t, money.FromMajor(25), l.Subtotal())

		pi, err := checkout.NewPaymentIntent("u1", l.Subtotal(), "eur", now)
		require.NoError(t, err)

		order, err := pi.Confirm("u1", l.Items(), now)
		require.NoError(t, err)

		assert.Equal(t, money.FromMajor(25), order.Total())
		assert.Equal(t, checkout.OrderCompleted, order.Status())
		assert.Equal(t, "u1", order.UserID())
		assert.Equal(t, pi.ID(), order.PaymentIntentID())
		assert.Equal(t, now, order.CreatedAt())
		assert.Len(t, order.Items(), 2)
		assert.Equal(t, checkout.IntentSucceeded, pi.Status())
	})

	t.Run("reuse is rejected", func(t *testing.T) {
		l := cartWith(t)
		pi, err := checkout.NewPaymentIntent("u1", l.Subtotal(), "eur", now)
		require.NoError(t, err)
		_, err = pi.Confirm("u1", l.Items(), now)
		require.NoError(t, err)

		_, err = pi.Confirm("u1", l.Items(), now)
		require.ErrorIs(t, err, checkout.ErrIntentConsumed)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("other user cannot see the intent", func(t *testing.T) {
		l := cartWith(t)
		pi, err := checkout.NewPaymentIntent("u1", l.Subtotal(), "eur", now)
		require.NoError(t, err)

		_, err = pi.Confirm("u2", l.Items(), now)
		require.ErrorIs(t, err, checkout.ErrIntentNotFound)
		assert.Equal(t, checkout.IntentRequiresConfirmation, pi.Status())
	})

	t.Run("empty cart", func(t *testing.T) {
		pi, err := checkout.NewPaymentIntent("u1", 100, "eur", now)
		require.NoError(t, err)

		_, err = pi.Confirm("u1", nil, now)
		require.ErrorIs(t, err, checkout.ErrEmptyCart)
		assert.Equal(t, checkout.IntentRequiresConfirmation, pi.Status())
	})

	t.Run("cart changed since the intent", func(t *testing.T) {
		l := cartWith(t)
		pi, err := checkout.NewPaymentIntent("u1", money.FromMajor(10), "eur", now)
		require.NoError(t, err)

		_, err = pi.Confirm("u1", l.Items(), now)
		require.ErrorIs(t, err, checkout.ErrAmountMismatch)
		assert.Equal(t, checkout.IntentRequiresConfirmation, pi.Status())
	})

	t.Run("order keeps its own copy of the lines", func(t *testing.T) {
		l := cartWith(t)
		pi, err := checkout.NewPaymentIntent("u1", l.Subtotal(), "eur", now)
		require.NoError(t, err)
		items := l.Items()
		order, err := pi.Confirm("u1", items, now)
		require.NoError(t, err)

		items[0].Quantity = 42
		assert.Equal(t, 2, order.Items()[0].Quantity)
	})
}

func TestPaymentIntentCancel(t *testing.T) {
	pi, err := checkout.NewPaymentIntent("u1", 100, "eur", now)
	require.NoError(t, err)

	require.NoError(t, pi.Cancel("u1"))
	assert.Equal(t, checkout.IntentCanceled, pi.Status())

	require.ErrorIs(t, pi.Cancel("u1"), checkout.ErrIntentCanceled)

	_, err = pi.Confirm("u1", cartWith(t).Items(), now)
	require.ErrorIs(t, err, checkout.ErrIntentCanceled)
}
