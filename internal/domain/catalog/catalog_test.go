//go:build unit

package catalog_test

import (
	"testing"

	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/pkg/errs"
	"legal-storefront/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Document{
			{ID: 1, Title: "Codice Civile", Description: "Versione aggiornata", Category: catalog.DocumentCodes},
			{ID: 2, Title: "Circolari 2024", Description: "Raccolta interpretativa", Category: catalog.DocumentCirculars},
		},
		[]catalog.Magazine{
			{ID: 1, Title: "Diritto Civile Oggi", Description: "Riforma della famiglia", Featured: true, Articles: []string{"a", "b"}},
			{ID: 2, Title: "Stato Civile", Description: "Anagrafe", Featured: false},
		},
		[]catalog.Book{
			{ID: 1, Title: "Manuale", Author: "Prof. Mario Rossi", Price: money.FromMajor(89.9), OriginalPrice: ptr.To(money.FromMajor(99.9)), Bestseller: true, InStock: true, Category: catalog.BookManuals},
			{ID: 2, Title: "Successioni", Author: "Avv. Neri", Description: "Guida completa", Price: money.FromMajor(75.5), InStock: false, Category: catalog.BookSpecialist},
		},
	)
}

func TestCatalogFilters(t *testing.T) {
	c := newTestCatalog()

	t.Run("sentinel and blank categories return everything", func(t *testing.T) {
		for _, category := range []string{"", "Tutti", "tutti", "all", "  "} {
			assert.Len(t, c.Documents(category), 2, category)
			assert.Len(t, c.Books(category), 2, category)
		}
	})

	t.Run("exact category match", func(t *testing.T) {
		docs := c.Documents(string(catalog.DocumentCirculars))
		require.Len(t, docs, 1)
		assert.Equal(t, int64(2), docs[0].ID)

		assert.Empty(t, c.Books("Commerciale"))
	})
}

func TestCatalogLookups(t *testing.T) {
	c := newTestCatalog()

	_, ok := c.BookByID(999999)
	assert.False(t, ok)

	book, ok := c.BookByID(1)
	require.True(t, ok)
	assert.Equal(t, "Manuale", book.Title)

	_, ok = c.DocumentByID(42)
	assert.False(t, ok)

	mag, ok := c.MagazineByID(1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, mag.Articles)
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := newTestCatalog()

	mags := c.Magazines()
	mags[0].Articles[0] = "tampered"
	mags[0].Title = "tampered"

	books := c.Books("")
	*books[0].OriginalPrice = 0

	again, _ := c.MagazineByID(1)
	assert.Equal(t, "a", again.Articles[0])
	assert.Equal(t, "Diritto Civile Oggi", again.Title)

	book, _ := c.BookByID(1)
	assert.Equal(t, money.FromMajor(99.9), *book.OriginalPrice)
}

func TestCatalogSearch(t *testing.T) {
	c := newTestCatalog()

	t.Run("case-insensitive across fields", func(t *testing.T) {
		res := c.Search("CIVILE", catalog.ScopeAll)
		assert.Len(t, res.Documents, 1)
		assert.Len(t, res.Magazines, 2)
		assert.Empty(t, res.Books)
	})

	t.Run("books match on author", func(t *testing.T) {
		res := c.Search("rossi", catalog.ScopeAll)
		require.Len(t, res.Books, 1)
		assert.Equal(t, int64(1), res.Books[0].ID)
	})

	t.Run("scope excludes other types", func(t *testing.T) {
		res := c.Search("civile", catalog.ScopeDocuments)
		assert.Len(t, res.Documents, 1)
		assert.NotNil(t, res.Magazines)
		assert.Empty(t, res.Magazines)
		assert.Empty(t, res.Books)
	})

	t.Run("blank query matches everything in scope", func(t *testing.T) {
		res := c.Search("", catalog.ScopeBooks)
		assert.Len(t, res.Books, 2)
		assert.Empty(t, res.Documents)
	})
}

func TestParseScope(t *testing.T) {
	for _, in := range []string{"", "documents", "Magazines", " books "} {
		_, err := catalog.ParseScope(in)
		assert.NoError(t, err, in)
	}

	_, err := catalog.ParseScope("videos")
	require.ErrorIs(t, err, catalog.ErrInvalidScope)
	assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
}

func TestCatalogStats(t *testing.T) {
	s := newTestCatalog().Stats()
	assert.Equal(t, catalog.Stats{TotalDocuments: 2, TotalMagazines: 2, TotalBooks: 2, FeaturedMagazines: 1, Bestsellers: 1}, s)
}
