package queries

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

import (
	"context"

	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/usecase/shared"
)

type OrderQueries interface {
	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]OrderView, error)
	GetOrder(ctx context.Context, userID, orderID string) (*OrderView, error)
}

type orderQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOrderQueries(uow shared.UnitOfWork) OrderQueries {
	return &orderQueriesImpl{uow: uow}
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, userID string) ([]OrderView, error) {
	views := make([]OrderView, 0)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		orders, err := tx.Orders().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, o := range orders {
			v, err := ToOrderView(o)
			if err != nil {
				return err
			}
			views = append(views, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetOrder hides other users' orders behind the same not-found error.
func (q *orderQueriesImpl) GetOrder(ctx context.Context, userID, orderID string) (*OrderView, error) {
	var view *OrderView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return checkout.ErrOrderNotFound
			}
			return err
		}
		if o.UserID() != userID {
			return checkout.ErrOrderNotFound
		}
		view, err = ToOrderView(o)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
