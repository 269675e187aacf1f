package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"log/slog"

	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/pkg/clock"
	"legal-storefront/internal/usecase/shared"
)

const msgIntentCanceled = "Pagamento annullato"

type CheckoutCommands interface {
	CreatePaymentIntent(ctx context.Context, userID string, amount money.Money) (*checkout.PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, userID, intentID string) (string, error)
	// ConfirmPayment turns the current cart into a completed order and empties
	// the cart. On any error neither the cart nor the intent change.
	ConfirmPayment(ctx context.Context, userID, intentID string) (*checkout.Order, error)
}

type checkoutCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	currency string
}

func NewCheckoutCommands(uow shared.UnitOfWork, clk clock.Clock, currency string) CheckoutCommands {
	return &checkoutCommandsImpl{uow: uow, clock: clk, currency: currency}
}

func (uc *checkoutCommandsImpl) CreatePaymentIntent(ctx context.Context, userID string, amount money.Money) (*checkout.PaymentIntent, error) {
	pi, err := checkout.NewPaymentIntent(userID, amount, uc.currency, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PaymentIntents().Save(ctx, pi)
	})
	if err != nil {
		return nil, err
	}
	return pi, nil
}

func (uc *checkoutCommandsImpl) CancelPaymentIntent(ctx context.Context, userID, intentID string) (string, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pi, err := findIntent(ctx, tx, intentID)
		if err != nil {
			return err
		}
		if err := pi.Cancel(userID); err != nil {
			return err
		}
		return tx.PaymentIntents().Save(ctx, pi)
	})
	if err != nil {
		return "", err
	}
	return msgIntentCanceled, nil
}

func (uc *checkoutCommandsImpl) ConfirmPayment(ctx context.Context, userID, intentID string) (*checkout.Order, error) {
	var order *checkout.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pi, err := findIntent(ctx, tx, intentID)
		if err != nil {
			return err
		}
		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}

		order, err = pi.Confirm(userID, l.Items(), uc.clock.Now())
		if err != nil {
			return err
		}

		if err := tx.PaymentIntents().Save(ctx, pi); err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		l.Clear()
		return tx.Carts().Save(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order confirmed",
		"order_id", order.ID(),
		"user_id", userID,
		"payment_intent_id", intentID,
		"total", order.Total().String())
	return order, nil
}

func findIntent(ctx context.Context, tx shared.Tx, id string) (*checkout.PaymentIntent, error) {
	pi, err := tx.PaymentIntents().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, checkout.ErrIntentNotFound
		}
		return nil, err
	}
	return pi, nil
}
