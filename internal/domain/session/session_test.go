//go:build unit

package session_test

import (
	"testing"
	"time"

	"legal-storefront/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	s := session.NewAnonymous()
	_, ok := s.User()
	assert.False(t, ok)

	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	first := s.Login(session.User{ID: "1", Name: "Mario Rossi"}, now)

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Mario Rossi", u.Name)
	assert.Equal(t, now, s.Since())
	assert.Equal(t, first, s.ID())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.True(t, s.Since().IsZero())
	assert.Empty(t, s.ID())

	second := s.Login(session.User{ID: "1", Name: "Mario Rossi"}, now)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second, "a new login must not reuse the session id")
}

func TestReconstructCopiesUser(t *testing.T) {
	u := &session.User{ID: "1"}
	s := session.Reconstruct("sess-1", u, time.Time{})
	u.ID = "2"

	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "sess-1", s.ID())
}

func TestParsePersistencePolicy(t *testing.T) {
	for in, want := range map[string]session.PersistencePolicy{
		"":        session.PersistAlways,
		"always":  session.PersistAlways,
		"NEVER":   session.PersistNever,
		" random": session.PersistRandom,
	} {
		got, err := session.ParsePersistencePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := session.ParsePersistencePolicy("sometimes")
	require.ErrorIs(t, err, session.ErrInvalidPolicy)
}

func TestPersistence(t *testing.T) {
	t.Run("always and never are constant", func(t *testing.T) {
		always := session.NewPersistence(session.PersistAlways, 0)
		never := session.NewPersistence(session.PersistNever, 0)
		for range 20 {
			assert.True(t, always.Survives())
			assert.False(t, never.Survives())
		}
	})

	t.Run("random is reproducible per seed and produces both outcomes", func(t *testing.T) {
		a := session.NewPersistence(session.PersistRandom, 42)
		b := session.NewPersistence(session.PersistRandom, 42)

		seen := map[bool]int{}
		for range 200 {
			va, vb := a.Survives(), b.Survives()
			require.Equal(t, va, vb)
			seen[va]++
		}
		assert.Positive(t, seen[true])
		assert.Positive(t, seen[false])
	})
}
