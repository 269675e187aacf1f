//go:build unit || e2e

package builder

import (
	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/money"
)

type BookBuilder struct {
	ID            int64
	Title         string
	Author        string
	CoverImage    string
	Price         money.Money
	OriginalPrice *money.Money
	InStock       bool
	Bestseller    bool
	Category      catalog.BookCategory
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		ID:         1,
		Title:      "Manuale di Diritto Civile",
		Author:     "Prof. Mario Rossi",
		CoverImage: "/placeholder.svg",
		Price:      money.FromCents(1000),
		InStock:    true,
		Category:   catalog.BookManuals,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) WithID(id int64) *BookBuilder {
	b.ID = id
	return b
}

func (b *BookBuilder) WithPrice(cents int64) *BookBuilder {
	b.Price = money.FromCents(cents)
	return b
}

func (b *BookBuilder) OutOfStock() *BookBuilder {
	b.InStock = false
	return b
}

func (b *BookBuilder) Build() catalog.Book {
	return catalog.Book{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		CoverImage:    b.CoverImage,
		Price:         b.Price,
		OriginalPrice: b.OriginalPrice,
		InStock:       b.InStock,
		Bestseller:    b.Bestseller,
		Category:      b.Category,
	}
}
