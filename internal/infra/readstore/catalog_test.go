//go:build unit

package readstore_test

import (
	"testing"

	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/infra/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogFixture(t *testing.T) {
	c := readstore.NewCatalog()

	assert.Equal(t, catalog.Stats{
		TotalDocuments:    6,
		TotalMagazines:    4,
		TotalBooks:        6,
		FeaturedMagazines: 2,
		Bestsellers:       2,
	}, c.Stats())

	book, ok := c.BookByID(4)
	require.True(t, ok)
	assert.False(t, book.InStock)

	book, ok = c.BookByID(1)
	require.True(t, ok)
	assert.Equal(t, "89.90", book.Price.String())
	require.NotNil(t, book.OriginalPrice)
	assert.Equal(t, "99.90", book.OriginalPrice.String())

	assert.Len(t, c.Books(string(catalog.BookSpecialist)), 2)
	assert.Len(t, c.Documents(string(catalog.DocumentCodes)), 1)
}

func TestNewCatalogInstancesAreIndependent(t *testing.T) {
	a := readstore.NewCatalog()
	b := readstore.NewCatalog()

	mags := a.Magazines()
	mags[0].Articles[0] = "changed"

	m, _ := b.MagazineByID(1)
	assert.Equal(t, "La riforma del diritto di famiglia: aspetti pratici", m.Articles[0])
}
