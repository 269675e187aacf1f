package middleware

import (
	"legal-storefront/internal/pkg/latency"

	"github.com/gin-gonic/gin"
)

// SimulatedLatency delays the route by the operation's round-trip time. It is
// meant for a route's own middleware list and does not call c.Next.
func SimulatedLatency(sim *latency.Simulator, op latency.Operation) gin.HandlerFunc {
	return func(_ *gin.Context) {
		sim.Wait(op)
	}
}
