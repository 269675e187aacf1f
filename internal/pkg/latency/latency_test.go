//go:build unit

package latency_test

import (
	"testing"
	"time"

	"legal-storefront/internal/pkg/latency"

	"github.com/stretchr/testify/assert"
)

func TestSimulator(t *testing.T) {
	t.Run("zero scale never sleeps", func(t *testing.T) {
		var slept []time.Duration
		sim := latency.NewSimulatorWithSleeper(0, func(d time.Duration) { slept = append(slept, d) })

		sim.Wait(latency.OpConfirmPayment)

		assert.Zero(t, sim.Delay(latency.OpConfirmPayment))
		assert.Empty(t, slept)
	})

	t.Run("scale multiplies the base delay", func(t *testing.T) {
		var slept []time.Duration
		sim := latency.NewSimulatorWithSleeper(0.5, func(d time.Duration) { slept = append(slept, d) })

		sim.Wait(latency.OpConfirmPayment)
		sim.Wait(latency.OpLogin)

		assert.Equal(t, []time.Duration{time.Second, 500 * time.Millisecond}, slept)
	})

	t.Run("negative scale is clamped", func(t *testing.T) {
		sim := latency.NewSimulator(-3)
		assert.Zero(t, sim.Delay(latency.OpSearch))
	})

	t.Run("nil simulator is inert", func(t *testing.T) {
		var sim *latency.Simulator
		assert.Zero(t, sim.Delay(latency.OpSearch))
	})
}
