package repository

import (
	"context"

	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/infra/memstore"
	"legal-storefront/internal/infra/repository/converter"
)

type FavoriteRepository struct {
	state *memstore.State
}

func NewFavoriteRepository(state *memstore.State) *FavoriteRepository {
	return &FavoriteRepository{state: state}
}

func (r *FavoriteRepository) Load(_ context.Context) (*favorite.Registry, error) {
	return converter.FavoritesFromRow(r.state.Favorites), nil
}

func (r *FavoriteRepository) Save(_ context.Context, reg *favorite.Registry) error {
	r.state.Favorites = converter.FavoritesToRow(reg)
	return nil
}
