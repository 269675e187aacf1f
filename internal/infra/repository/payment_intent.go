package repository

import (
	"context"

	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/infra"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository/converter"
)

type PaymentIntentRepository struct {
	state *memstore.State
}

func NewPaymentIntentRepository(state *memstore.State) *PaymentIntentRepository {
	return &PaymentIntentRepository{state: state}
}

func (r *PaymentIntentRepository) FindByID(_ context.Context, id string) (*checkout.PaymentIntent, error) {
	row, ok := r.state.Intents[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment intent not found", nil, infra.KindNotFound)
	}
	return converter.IntentFromRow(row), nil
}

// Save inserts or replaces the intent.
func (r *PaymentIntentRepository) Save(_ context.Context, pi *checkout.PaymentIntent) error {
	row, err := converter.IntentToRow(pi)
	if err != nil {
		return infra.WrapRepoErr("failed to save payment intent", err, infra.KindConversion)
	}
	r.state.Intents[row.ID] = row
	return nil
}
