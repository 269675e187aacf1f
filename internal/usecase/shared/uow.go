package shared

import (
	"context"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/checkout"
	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/domain/session"
)

type UnitOfWork interface {
	// Within: exclusive, all-or-nothing write. Changes are discarded when fn returns an error.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for reads spanning several aggregates
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type ReadTx interface {
	Carts() CartReader
	Favorites() FavoriteReader
	Sessions() SessionReader
	Orders() OrderReader
}

type Tx interface {
	Carts() CartRepository
	Favorites() FavoriteRepository
	Sessions() SessionRepository
	PaymentIntents() PaymentIntentRepository
	Orders() OrderRepository
}

type CartReader interface {
	Load(ctx context.Context) (*cart.Ledger, error)
}

type CartRepository interface {
	CartReader
	Save(ctx context.Context, l *cart.Ledger) error
}

type FavoriteReader interface {
	Load(ctx context.Context) (*favorite.Registry, error)
}

type FavoriteRepository interface {
	FavoriteReader
	Save(ctx context.Context, r *favorite.Registry) error
}

type SessionReader interface {
	Load(ctx context.Context) (*session.Session, error)
}

type SessionRepository interface {
	SessionReader
	Save(ctx context.Context, s *session.Session) error
}

type PaymentIntentRepository interface {
	FindByID(ctx context.Context, id string) (*checkout.PaymentIntent, error)
	Save(ctx context.Context, pi *checkout.PaymentIntent) error
}

type OrderReader interface {
	FindByID(ctx context.Context, id string) (*checkout.Order, error)
	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID string) ([]*checkout.Order, error)
}

type OrderRepository interface {
	OrderReader
	Create(ctx context.Context, o *checkout.Order) error
}

// Catalog is the static, lock-free catalog lookup shared by commands and queries.
type Catalog interface {
	Documents(category string) []catalog.Document
	Magazines() []catalog.Magazine
	Books(category string) []catalog.Book
	DocumentByID(id int64) (catalog.Document, bool)
	MagazineByID(id int64) (catalog.Magazine, bool)
	BookByID(id int64) (catalog.Book, bool)
	Search(query string, scope catalog.Scope) catalog.SearchResult
	Stats() catalog.Stats
}
