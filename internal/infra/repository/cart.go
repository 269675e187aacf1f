package repository

import (
	"context"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository/converter"
)

type CartRepository struct {
	state *memstore.State
}

func NewCartRepository(state *memstore.State) *CartRepository {
	return &CartRepository{state: state}
}

func (r *CartRepository) Load(_ context.Context) (*cart.Ledger, error) {
	l, err := converter.CartFromRow(r.state.Cart)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err, infra.KindConversion)
	}
	return l, nil
}

func (r *CartRepository) Save(_ context.Context, l *cart.Ledger) error {
	row, err := converter.CartToRow(l)
	if err != nil {
		return infra.WrapRepoErr("failed to save cart", err, infra.KindConversion)
	}
	r.state.Cart = row
	return nil
}
