package uow

import (
	"context"

	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository"
	"legal-storefront/internal/usecase/shared"
)

type MemoryUoW struct {
	store *memstore.Store
}

func NewMemoryUoW(store *memstore.Store) shared.UnitOfWork {
	return &MemoryUoW{store: store}
}

// Writers are fully serialized, which makes every command linearizable.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.store.Update(ctx, func(st *memstore.State) error {
		return fn(ctx, &memTx{state: st})
	})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	return u.store.View(ctx, func(st *memstore.State) error {
		return fn(ctx, &memReadTx{tx: memTx{state: st}})
	})
}

type memTx struct {
	state *memstore.State

	// Lazy-initialized repositories
	cartRepo     *repository.CartRepository
	favoriteRepo *repository.FavoriteRepository
	sessionRepo  *repository.SessionRepository
	intentRepo   *repository.PaymentIntentRepository
	orderRepo    *repository.OrderRepository
}

func (t *memTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.state)
	}
	return t.cartRepo
}

func (t *memTx) Favorites() shared.FavoriteRepository {
	if t.favoriteRepo == nil {
		t.favoriteRepo = repository.NewFavoriteRepository(t.state)
	}
	return t.favoriteRepo
}

func (t *memTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.state)
	}
	return t.sessionRepo
}

func (t *memTx) PaymentIntents() shared.PaymentIntentRepository {
	if t.intentRepo == nil {
		t.intentRepo = repository.NewPaymentIntentRepository(t.state)
	}
	return t.intentRepo
}

func (t *memTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.state)
	}
	return t.orderRepo
}

// memReadTx narrows memTx to the reader interfaces.
type memReadTx struct {
	tx memTx
}

func (t *memReadTx) Carts() shared.CartReader         { return t.tx.Carts() }
func (t *memReadTx) Favorites() shared.FavoriteReader { return t.tx.Favorites() }
func (t *memReadTx) Sessions() shared.SessionReader   { return t.tx.Sessions() }
func (t *memReadTx) Orders() shared.OrderReader       { return t.tx.Orders() }
