package queries

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/queries/favorite.go -package=queriesmock

import (
	"context"

	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/usecase/shared"
)

type FavoriteQueries interface {
	IsFavorite(ctx context.Context, t favorite.ContentType, id int64) (bool, error)
	// List* resolve ids through the catalog in the order they were added;
	// ids that no longer resolve are skipped.
	ListBooks(ctx context.Context) ([]BookView, error)
	ListDocuments(ctx context.Context) ([]DocumentView, error)
	ListMagazines(ctx context.Context) ([]MagazineView, error)
}

type favoriteQueriesImpl struct {
	uow     shared.UnitOfWork
	catalog shared.Catalog
}

func NewFavoriteQueries(uow shared.UnitOfWork, c shared.Catalog) FavoriteQueries {
	return &favoriteQueriesImpl{uow: uow, catalog: c}
}

func (q *favoriteQueriesImpl) IsFavorite(ctx context.Context, t favorite.ContentType, id int64) (bool, error) {
	var found bool
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		reg, err := tx.Favorites().Load(ctx)
		if err != nil {
			return err
		}
		found = reg.Contains(t, id)
		return nil
	})
	return found, err
}

func (q *favoriteQueriesImpl) ListBooks(ctx context.Context) ([]BookView, error) {
	ids, err := q.ids(ctx, favorite.TypeBook)
	if err != nil {
		return nil, err
	}
	return ToBookViews(resolve(ids, q.catalog.BookByID))
}

func (q *favoriteQueriesImpl) ListDocuments(ctx context.Context) ([]DocumentView, error) {
	ids, err := q.ids(ctx, favorite.TypeDocument)
	if err != nil {
		return nil, err
	}
	return ToDocumentViews(resolve(ids, q.catalog.DocumentByID))
}

func (q *favoriteQueriesImpl) ListMagazines(ctx context.Context) ([]MagazineView, error) {
	ids, err := q.ids(ctx, favorite.TypeMagazine)
	if err != nil {
		return nil, err
	}
	return ToMagazineViews(resolve(ids, q.catalog.MagazineByID))
}

func (q *favoriteQueriesImpl) ids(ctx context.Context, t favorite.ContentType) ([]int64, error) {
	var ids []int64
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		reg, err := tx.Favorites().Load(ctx)
		if err != nil {
			return err
		}
		ids = reg.IDs(t)
		return nil
	})
	return ids, err
}

func resolve[T catalog.Document | catalog.Magazine | catalog.Book](ids []int64, lookup func(int64) (T, bool)) []T {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := lookup(id); ok {
			out = append(out, v)
		}
	}
	return out
}
