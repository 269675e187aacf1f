//go:build unit

package money_test

import (
	"testing"

	"legal-storefront/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	t.Run("from major rounds to the nearest cent", func(t *testing.T) {
		assert.Equal(t, int64(8990), money.FromMajor(89.90).Cents())
		assert.Equal(t, int64(7550), money.FromMajor(75.5).Cents())
		assert.Equal(t, int64(13), money.FromMajor(0.125).Cents())
		assert.Equal(t, int64(0), money.FromMajor(0.004).Cents())
	})

	t.Run("arithmetic", func(t *testing.T) {
		a := money.FromMajor(10).Times(2)
		b := money.FromMajor(5)
		assert.Equal(t, money.FromMajor(25), a.Add(b))
		assert.InDelta(t, 25.0, a.Add(b).Major(), 1e-9)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "89.90", money.FromCents(8990).String())
		assert.Equal(t, "0.05", money.FromCents(5).String())
		assert.Equal(t, "-1.20", money.FromCents(-120).String())
	})
}
