package commands

//go:generate mockgen -source=favorite.go -destination=../../../tests/mock/commands/favorite.go -package=commandsmock

import (
	"context"

	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/usecase/shared"
)

const (
	msgFavoriteAdded   = "Aggiunto ai preferiti"
	msgFavoriteRemoved = "Rimosso dai preferiti"
)

// FavoriteCommands are idempotent: repeating an add or a remove is a successful no-op.
type FavoriteCommands interface {
	Add(ctx context.Context, t favorite.ContentType, id int64) (string, error)
	Remove(ctx context.Context, t favorite.ContentType, id int64) (string, error)
}

type favoriteCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFavoriteCommands(uow shared.UnitOfWork) FavoriteCommands {
	return &favoriteCommandsImpl{uow: uow}
}

func (uc *favoriteCommandsImpl) Add(ctx context.Context, t favorite.ContentType, id int64) (string, error) {
	err := uc.mutate(ctx, func(r *favorite.Registry) bool { return r.Add(t, id) })
	if err != nil {
		return "", err
	}
	return msgFavoriteAdded, nil
}

func (uc *favoriteCommandsImpl) Remove(ctx context.Context, t favorite.ContentType, id int64) (string, error) {
	err := uc.mutate(ctx, func(r *favorite.Registry) bool { return r.Remove(t, id) })
	if err != nil {
		return "", err
	}
	return msgFavoriteRemoved, nil
}

// mutate skips the save when fn reports no change.
func (uc *favoriteCommandsImpl) mutate(ctx context.Context, fn func(r *favorite.Registry) bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reg, err := tx.Favorites().Load(ctx)
		if err != nil {
			return err
		}
		if !fn(reg) {
			return nil
		}
		return tx.Favorites().Save(ctx, reg)
	})
}
