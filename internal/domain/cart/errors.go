package cart

import "legal-storefront/internal/pkg/errs"

var (
	ErrBookNotFound     = errs.NewKind(errs.KindNotFound, "Libro non trovato")
	ErrBookUnavailable  = errs.NewKind(errs.KindUnavailable, "Libro non disponibile")
	ErrItemNotFound     = errs.NewKind(errs.KindNotFound, "Articolo non trovato nel carrello")
	ErrInvalidQuantity  = errs.NewKind(errs.KindValidationFailed, "La quantità deve essere almeno 1")
	ErrQuantityTooLarge = errs.NewKind(errs.KindValidationFailed, "Quantità massima per articolo superata")
)
