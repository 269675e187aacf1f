package commands

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

import (
	"context"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/usecase/shared"
)

const (
	msgItemRemoved     = "Articolo rimosso dal carrello"
	msgQuantityUpdated = "Quantità aggiornata"
	msgCartCleared     = "Carrello svuotato"
)

type CartResult struct {
	Message string
}

type CartCommands interface {
	// AddItem adds one copy when quantity is nil.
	AddItem(ctx context.Context, bookID int64, quantity *int) (*CartResult, error)
	SetQuantity(ctx context.Context, itemID int64, quantity int) (*CartResult, error)
	RemoveItem(ctx context.Context, itemID int64) (*CartResult, error)
	Clear(ctx context.Context) (*CartResult, error)
}

type cartCommandsImpl struct {
	uow     shared.UnitOfWork
	catalog shared.Catalog
}

func NewCartCommands(uow shared.UnitOfWork, c shared.Catalog) CartCommands {
	return &cartCommandsImpl{uow: uow, catalog: c}
}

func (uc *cartCommandsImpl) AddItem(ctx context.Context, bookID int64, quantity *int) (*CartResult, error) {
	book, ok := uc.catalog.BookByID(bookID)
	if !ok {
		return nil, cart.ErrBookNotFound
	}

	err := uc.mutate(ctx, func(l *cart.Ledger) error {
		_, err := l.Add(book, quantityOrOne(quantity))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &CartResult{Message: book.Title + " aggiunto al carrello"}, nil
}

func (uc *cartCommandsImpl) SetQuantity(ctx context.Context, itemID int64, quantity int) (*CartResult, error) {
	var removed bool
	err := uc.mutate(ctx, func(l *cart.Ledger) error {
		var err error
		removed, err = l.SetQuantity(itemID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	if removed {
		return &CartResult{Message: msgItemRemoved}, nil
	}
	return &CartResult{Message: msgQuantityUpdated}, nil
}

func (uc *cartCommandsImpl) RemoveItem(ctx context.Context, itemID int64) (*CartResult, error) {
	err := uc.mutate(ctx, func(l *cart.Ledger) error {
		return l.Remove(itemID)
	})
	if err != nil {
		return nil, err
	}
	return &CartResult{Message: msgItemRemoved}, nil
}

func (uc *cartCommandsImpl) Clear(ctx context.Context) (*CartResult, error) {
	err := uc.mutate(ctx, func(l *cart.Ledger) error {
		l.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CartResult{Message: msgCartCleared}, nil
}

func (uc *cartCommandsImpl) mutate(ctx context.Context, fn func(l *cart.Ledger) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Carts().Load(ctx)
		if err != nil {
			return err
		}
		if err := fn(l); err != nil {
			return err
		}
		return tx.Carts().Save(ctx, l)
	})
}

func quantityOrOne(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}
