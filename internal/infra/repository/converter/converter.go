package converter

import (
	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/domain/session"
	"legal-storefront/internal/infra/memstore"

	"github.com/jinzhu/copier"
)

// Aggregates expose state through getters; copier reads them as methods.
// Case-sensitive matching keeps it from touching the unexported fields.
var fromAggregate = copier.Option{CaseSensitive: true}

func CartToRow(l *cart.Ledger) (memstore.CartRow, error) {
	row := memstore.CartRow{LastID: l.LastID()}
	if err := copier.Copy(&row.Items, l.Items()); err != nil {
		return memstore.CartRow{}, err
	}
	return row, nil
}

func CartFromRow(row memstore.CartRow) (*cart.Ledger, error) {
	items, err := ItemsFromRows(row.Items)
	if err != nil {
		return nil, err
	}
	return cart.ReconstructLedger(items, row.LastID), nil
}

func ItemsFromRows(rows []memstore.CartItemRow) ([]cart.Item, error) {
	items := make([]cart.Item, 0, len(rows))
	if err := copier.Copy(&items, rows); err != nil {
		return nil, err
	}
	return items, nil
}

func IntentToRow(pi *checkout.PaymentIntent) (memstore.PaymentIntentRow, error) {
	var row memstore.PaymentIntentRow
	if err := copier.CopyWithOption(&row, pi, fromAggregate); err != nil {
		return memstore.PaymentIntentRow{}, err
	}
	return row, nil
}

func IntentFromRow(row memstore.PaymentIntentRow) *checkout.PaymentIntent {
	return checkout.ReconstructPaymentIntent(
		row.ID, row.ClientSecret,
		money.FromCents(row.Amount),
		row.Currency, row.UserID,
		checkout.IntentStatus(row.Status),
		row.CreatedAt,
	)
}

func OrderToRow(o *checkout.Order) (memstore.OrderRow, error) {
	var row memstore.OrderRow
	if err := copier.CopyWithOption(&row, o, fromAggregate); err != nil {
		return memstore.OrderRow{}, err
	}
	if err := copier.Copy(&row.Lines, o.Items()); err != nil {
		return memstore.OrderRow{}, err
	}
	return row, nil
}

func OrderFromRow(row memstore.OrderRow) (*checkout.Order, error) {
	items, err := ItemsFromRows(row.Lines)
	if err != nil {
		return nil, err
	}
	return checkout.ReconstructOrder(
		row.ID, row.UserID, items,
		money.FromCents(row.Total),
		checkout.OrderStatus(row.Status),
		row.CreatedAt, row.PaymentIntentID,
	), nil
}

func SessionToRow(s *session.Session) memstore.SessionRow {
	u, ok := s.User()
	if !ok {
		return memstore.SessionRow{}
	}
	ur := memstore.UserRow(u)
	return memstore.SessionRow{ID: s.ID(), User: &ur, Since: s.Since()}
}

func SessionFromRow(row memstore.SessionRow) *session.Session {
	if row.User == nil {
		return session.NewAnonymous()
	}
	u := session.User(*row.User)
	return session.Reconstruct(row.ID, &u, row.Since)
}

func FavoritesToRow(r *favorite.Registry) map[string][]int64 {
	out := make(map[string][]int64, len(favorite.ContentTypes))
	for t, ids := range r.Sets() {
		out[string(t)] = ids
	}
	return out
}

func FavoritesFromRow(row map[string][]int64) *favorite.Registry {
	sets := make(map[favorite.ContentType][]int64, len(row))
	for t, ids := range row {
		sets[favorite.ContentType(t)] = ids
	}
	return favorite.ReconstructRegistry(sets)
}
