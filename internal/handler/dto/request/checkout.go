package request

import "legal-storefront/internal/domain/money"

// CreatePaymentIntentRequest carries the amount in euros, as shown to the shopper.
// The upper bound keeps the cents conversion inside int64.
type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0,lte=10000000"`
}

func (r CreatePaymentIntentRequest) ToMoney() money.Money {
	return money.FromMajor(r.Amount)
}
