//go:build unit

package favorite_test

import (
	"testing"

	"legal-storefront/internal/domain/favorite"
	"legal-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		in   string
		want favorite.ContentType
	}{
		{"book", favorite.TypeBook},
		{"Books", favorite.TypeBook},
		{"document", favorite.TypeDocument},
		{"documents", favorite.TypeDocument},
		{" MAGAZINE ", favorite.TypeMagazine},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := favorite.ParseContentType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := favorite.ParseContentType("video")
	require.ErrorIs(t, err, favorite.ErrInvalidContentType)
	assert.Equal(t, errs.KindValidationFailed, errs.KindOf(err))
}

func TestRegistry(t *testing.T) {
	r := favorite.NewRegistry()

	assert.True(t, r.Add(favorite.TypeBook, 3))
	assert.True(t, r.Add(favorite.TypeBook, 1))
	assert.False(t, r.Add(favorite.TypeBook, 3))
	assert.Equal(t, []int64{3, 1}, r.IDs(favorite.TypeBook))

	t.Run("types are independent", func(t *testing.T) {
		assert.False(t, r.Contains(favorite.TypeDocument, 3))
		assert.Empty(t, r.IDs(favorite.TypeMagazine))
	})

	t.Run("remove", func(t *testing.T) {
		assert.True(t, r.Remove(favorite.TypeBook, 3))
		assert.False(t, r.Remove(favorite.TypeBook, 3))
		assert.Equal(t, []int64{1}, r.IDs(favorite.TypeBook))
	})

	t.Run("ids are copies", func(t *testing.T) {
		ids := r.IDs(favorite.TypeBook)
		ids[0] = 99
		assert.True(t, r.Contains(favorite.TypeBook, 1))
	})
}

func TestRegistryIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		typ := rapid.SampledFrom(favorite.ContentTypes).Draw(t, "type")
		id := rapid.Int64Range(1, 100).Draw(t, "id")

		once := favorite.NewRegistry()
		once.Add(typ, id)

		twice := favorite.NewRegistry()
		twice.Add(typ, id)
		twice.Add(typ, id)

		if len(once.IDs(typ)) != 1 || len(twice.IDs(typ)) != 1 {
			t.Fatalf("add is not idempotent: %v vs %v", once.IDs(typ), twice.IDs(typ))
		}

		empty := favorite.NewRegistry()
		if empty.Remove(typ, id) || len(empty.IDs(typ)) != 0 {
			t.Fatalf("remove of absent id changed the registry")
		}
	})
}
