package cart

import "legal-storefront/internal/domain/money"

// Item is one cart line. Title, author, price and cover are copied from the
// book when the line is created and are not refreshed afterwards.
type Item struct {
	ID         int64
	BookID     int64
	Title      string
	Author     string
	Price      money.Money
	Quantity   int
	CoverImage string
}

func (i Item) LineTotal() money.Money {
	return i.Price.Times(i.Quantity)
}
