package checkout

import (
	"slices"
	"time"

	"legal-storefront/internal/domain/cart"
	"legal-storefront/internal/domain/money"

	"github.com/google/uuid"
)

// Order is the immutable record of a confirmed payment.
type Order struct {
	id              string
	userID          string
	items           []cart.Item
	total           money.Money
	status          OrderStatus
	createdAt       time.Time
	paymentIntentID string
}

func newOrder(userID, intentID string, items []cart.Item, total money.Money, now time.Time) *Order {
	return &Order{
		id:              uuid.NewString(),
		userID:          userID,
		items:           slices.Clone(items),
		total:           total,
		status:          OrderCompleted,
		createdAt:       now,
		paymentIntentID: intentID,
	}
}

func ReconstructOrder(
	id, userID string,
	items []cart.Item,
	total money.Money,
	status OrderStatus,
	createdAt time.Time,
	paymentIntentID string,
) *Order {
	return &Order{
		id:              id,
		userID:          userID,
		items:           slices.Clone(items),
		total:           total,
		status:          status,
		createdAt:       createdAt,
		paymentIntentID: paymentIntentID,
	}
}

func (o *Order) ID() string              { return o.id }
func (o *Order) UserID() string          { return o.userID }
func (o *Order) Items() []cart.Item      { return slices.Clone(o.items) }
func (o *Order) Total() money.Money      { return o.total }
func (o *Order) Status() OrderStatus     { return o.status }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
func (o *Order) PaymentIntentID() string { return o.paymentIntentID }
