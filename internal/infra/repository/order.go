package repository

import (
	"context"
	"slices"

	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository/converter"
)

type OrderRepository struct {
	state *memstore.State
}

func NewOrderRepository(state *memstore.State) *OrderRepository {
	return &OrderRepository{state: state}
}

func (r *OrderRepository) Create(_ context.Context, o *checkout.Order) error {
	row, err := converter.OrderToRow(o)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err, infra.KindConversion)
	}
	r.state.Orders = append(r.state.Orders, row)
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id string) (*checkout.Order, error) {
	idx := slices.IndexFunc(r.state.Orders, func(row memstore.OrderRow) bool { return row.ID == id })
	if idx < 0 {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	o, err := converter.OrderFromRow(r.state.Orders[idx])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order", err, infra.KindConversion)
	}
	return o, nil
}

// ListByUser walks the append-only order log backwards, so results are newest first.
func (r *OrderRepository) ListByUser(_ context.Context, userID string) ([]*checkout.Order, error) {
	out := make([]*checkout.Order, 0)
	for i := len(r.state.Orders) - 1; i >= 0; i-- {
		row := r.state.Orders[i]
		if row.UserID != userID {
			continue
		}
		o, err := converter.OrderFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load order", err, infra.KindConversion)
		}
		out = append(out, o)
	}
	return out, nil
}
