package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart.go -package=queriesmock

import (
	"context"

	"legal-storefront/internal/usecase/shared"
)

type CartQueries interface {
	GetCart(ctx context.Context) (*CartView, error)
}

type cartQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCartQueries(uow shared.UnitOfWork) CartQueries {
	return &cartQueriesImpl{uow: uow}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context) (*CartView, error) {
	var view *CartView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}
		items, err := ToCartItemViews(l.Items())
		if err != nil {
			return err
		}
		view = &CartView{
			Items:     items,
			Subtotal:  l.Subtotal().Major(),
			ItemCount: l.ItemCount(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
