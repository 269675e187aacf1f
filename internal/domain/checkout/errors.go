package checkout

import "legal-storefront/internal/pkg/errs"

var (
	ErrInvalidAmount  = errs.NewKind(errs.KindValidationFailed, "L'importo deve essere positivo")
	ErrAmountTooLarge = errs.NewKind(errs.KindValidationFailed, "Importo superiore al massimo consentito")
	ErrIntentNotFound = errs.NewKind(errs.KindNotFound, "Intento di pagamento non trovato")
	ErrIntentConsumed = errs.NewKind(errs.KindConflict, "Intento di pagamento già utilizzato")
	ErrIntentCanceled = errs.NewKind(errs.KindConflict, "Intento di pagamento annullato")
	ErrEmptyCart      = errs.NewKind(errs.KindValidationFailed, "Il carrello è vuoto")
	ErrAmountMismatch = errs.NewKind(errs.KindConflict, "Il totale del carrello non corrisponde all'importo autorizzato")
	ErrOrderNotFound  = errs.NewKind(errs.KindNotFound, "Ordine non trovato")
)
