//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"legal-storefront/internal/pkg/config"
	"legal-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults when only required values are set", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "s3cret")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "24h", cfg.JWT.Duration)
		assert.Equal(t, 12*time.Hour, cfg.CORS.MaxAge)
		assert.InDelta(t, 1.0, cfg.Simulation.LatencyScale, 1e-9)
		assert.Equal(t, "always", cfg.Simulation.SessionPersistence)
		assert.Equal(t, "eur", cfg.Simulation.Currency)
		assert.Equal(t, "Mario Rossi", cfg.Simulation.User.Name)
		assert.Equal(t, 100, cfg.RateLimit.Burst)
	})

	t.Run("overrides simulation knobs", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("SIM_LATENCY_SCALE", "0")
		t.Setenv("SIM_SESSION_PERSISTENCE", "random")
		t.Setenv("SIM_SESSION_SEED", "42")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Zero(t, cfg.Simulation.LatencyScale)
		assert.Equal(t, "random", cfg.Simulation.SessionPersistence)
		assert.Equal(t, uint64(42), cfg.Simulation.SessionSeed)
	})

	t.Run("fails without required values", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("PORT"))
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, config.NewTestConfig().Validate())

	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "bad jwt duration", mutate: func(c *config.Config) { c.JWT.Duration = "tomorrow" }},
		{name: "negative latency scale", mutate: func(c *config.Config) { c.Simulation.LatencyScale = -1 }},
		{name: "currency not a code", mutate: func(c *config.Config) { c.Simulation.Currency = "euro" }},
		{name: "relative asset url", mutate: func(c *config.Config) { c.Simulation.AssetBaseURL = "/assets" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			assert.True(t, errs.Is(err, config.ErrInvalidConfig), "got %v", err)
		})
	}
}
