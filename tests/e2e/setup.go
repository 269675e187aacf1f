//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"legal-storefront/cmd/bootstrap"
	"legal-storefront/cmd/bootstrap/components"
	"legal-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the full application graph with an in-memory store.
// Returns router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App) {
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.SimulationModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("router was not populated")
	}

	return router, app
}

// NewTestApp starts an application with a fresh store. mutate may adjust the
// test configuration before the graph is built.
func NewTestApp(t *testing.T, mutate func(*config.Config)) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	router, app := buildE2EApp(cfg)
	require.NotNil(t, router)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

// SharedSuite gives every test and subtest its own application, so no state
// leaks between cases.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	// Mutate, when set, adjusts the configuration of every app the suite builds.
	Mutate func(*config.Config)
}

func (s *SharedSuite) reset() {
	s.Router, s.Config = NewTestApp(s.T(), s.Mutate)
}

func (s *SharedSuite) SetupTest() {
	s.reset()
}

func (s *SharedSuite) SetupSubTest() {
	s.reset()
}
