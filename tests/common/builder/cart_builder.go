//go:build unit || e2e

package builder

import (
	reqdto "legal-storefront/internal/handler/dto/request"
	"legal-storefront/internal/usecase/queries"
)

type AddToCartBuilder struct {
	BookID   int64
	Quantity *int
}

func NewAddToCartBuilder() *AddToCartBuilder {
	return &AddToCartBuilder{BookID: 1}
}

func (a *AddToCartBuilder) WithBook(id int64) *AddToCartBuilder {
	a.BookID = id
	return a
}

func (a *AddToCartBuilder) WithQuantity(q int) *AddToCartBuilder {
	a.Quantity = &q
	return a
}

func (a *AddToCartBuilder) BuildDTO() reqdto.AddToCartRequest {
	return reqdto.AddToCartRequest{BookID: a.BookID, Quantity: a.Quantity}
}

// CartViewOf builds the view a cart holding the given lines would render.
func CartViewOf(items ...queries.CartItemView) *queries.CartView {
	v := &queries.CartView{Items: append([]queries.CartItemView{}, items...)}
	for _, it := range items {
		v.Subtotal += it.Price * float64(it.Quantity)
		v.ItemCount += it.Quantity
	}
	return v
}
