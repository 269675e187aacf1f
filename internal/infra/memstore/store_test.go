//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"legal-storefront/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreUpdateCommitsOnSuccess(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	err := s.Update(ctx, func(st *memstore.State) error {
		st.Cart.LastID = 7
		st.Favorites["book"] = []int64{1}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.View(ctx, func(st *memstore.State) error {
		assert.Equal(t, int64(7), st.Cart.LastID)
		assert.Equal(t, []int64{1}, st.Favorites["book"])
		return nil
	}))
}

func TestStoreUpdateDiscardsOnError(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Update(ctx, func(st *memstore.State) error {
		st.Cart.LastID = 7
		st.Intents["pi_1"] = memstore.PaymentIntentRow{ID: "pi_1"}
		st.Orders = append(st.Orders, memstore.OrderRow{ID: "o1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(st *memstore.State) error {
		assert.Zero(t, st.Cart.LastID)
		assert.Empty(t, st.Intents)
		assert.Empty(t, st.Orders)
		return nil
	}))
}

func TestStoreCancelledContext(t *testing.T) {
	s := memstore.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Update(ctx, func(*memstore.State) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStoreSerializesWriters(t *testing.T) {
	s := memstore.New()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, func(st *memstore.State) error {
				st.Cart.LastID++
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.View(ctx, func(st *memstore.State) error {
		assert.Equal(t, int64(n), st.Cart.LastID)
		return nil
	}))
}
