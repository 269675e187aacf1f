package checkout

import (
	"strings"
	"time"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/money"

	"github.com/google/uuid"
)

const intentIDPrefix = "pi_"

// MaxAmount is the largest amount an intent may authorize (10,000,000.00).
// It is above any cart the ledger allows.
const MaxAmount = money.Money(1_000_000_000)

// PaymentIntent is an authorized, not yet captured amount. It is bound to the
// user who created it and can be confirmed or cancelled exactly once.
type PaymentIntent struct {
	id           string
	clientSecret string
	amount       money.Money
	currency     string
	userID       string
	status       IntentStatus
	createdAt    time.Time
}

func NewPaymentIntent(userID string, amount money.Money, currency string, now time.Time) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}
	id := intentIDPrefix + compactUUID()
	return &PaymentIntent{
		id:           id,
		clientSecret: id + "_secret_" + compactUUID()[:24],
		amount:       amount,
		currency:     strings.ToLower(currency),
		userID:       userID,
		status:       IntentRequiresConfirmation,
		createdAt:    now,
	}, nil
}

func ReconstructPaymentIntent(
	id, clientSecret string,
	amount money.Money,
	currency, userID string,
	status IntentStatus,
	createdAt time.Time,
) *PaymentIntent {
	return &PaymentIntent{
		id:           id,
		clientSecret: clientSecret,
		amount:       amount,
		currency:     currency,
		userID:       userID,
		status:       status,
		createdAt:    createdAt,
	}
}

// Confirm captures the intent against the given cart contents and returns the
// completed order. The intent is only marked succeeded when every check passes.
func (p *PaymentIntent) Confirm(userID string, items []cart.Item, now time.Time) (*Order, error) {
	if err := p.checkOpen(userID); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := cart.Subtotal(items)
	if total != p.amount {
		return nil, ErrAmountMismatch
	}

	p.status = IntentSucceeded
	return newOrder(userID, p.id, items, total, now), nil
}

func (p *PaymentIntent) Cancel(userID string) error {
	if err := p.checkOpen(userID); err != nil {
		return err
	}
	p.status = IntentCanceled
	return nil
}

func (p *PaymentIntent) checkOpen(userID string) error {
	if p.userID != userID {
		return ErrIntentNotFound
	}
	switch p.status {
	case IntentSucceeded:
		return ErrIntentConsumed
	case IntentCanceled:
		return ErrIntentCanceled
	}
	return nil
}

func (p *PaymentIntent) ID() string           { return p.id }
func (p *PaymentIntent) ClientSecret() string { return p.clientSecret }
func (p *PaymentIntent) Amount() money.Money  { return p.amount }
func (p *PaymentIntent) Currency() string     { return p.currency }
func (p *PaymentIntent) UserID() string       { return p.userID }
func (p *PaymentIntent) Status() IntentStatus { return p.status }
func (p *PaymentIntent) CreatedAt() time.Time { return p.createdAt }

func compactUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
