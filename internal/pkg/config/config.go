package config

import (
	"fmt"
	"net/url"
	"time"

	"legal-storefront/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, simulation knobs), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	RateLimit  RateLimitConfig
	Simulation SimulationConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Rome"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// RateLimitConfig applies to the whole API. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"50"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"100"`
}

// SimulationConfig drives the mocked back end.
type SimulationConfig struct {
	LatencyScale       float64 `envconfig:"SIM_LATENCY_SCALE" default:"1"`
	SessionPersistence string  `envconfig:"SIM_SESSION_PERSISTENCE" default:"always"`
	SessionSeed        uint64  `envconfig:"SIM_SESSION_SEED" default:"0"`
	Currency           string  `envconfig:"SIM_CURRENCY" default:"eur"`
	AssetBaseURL       string  `envconfig:"SIM_ASSET_BASE_URL" default:"https://api.statocivileit.com"`
	User               DemoUserConfig
}

type DemoUserConfig struct {
	ID      string `envconfig:"SIM_USER_ID" default:"123456789"`
	Name    string `envconfig:"SIM_USER_NAME" default:"Mario Rossi"`
	Email   string `envconfig:"SIM_USER_EMAIL" default:"mario.rossi@example.com"`
	Picture string `envconfig:"SIM_USER_PICTURE" default:"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

var ErrInvalidConfig = errs.New("invalid configuration")

// Validate rejects values envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return errs.Wrapf(ErrInvalidConfig, "JWT_DURATION %q", c.JWT.Duration)
	}
	if c.Simulation.LatencyScale < 0 {
		return errs.Wrapf(ErrInvalidConfig, "SIM_LATENCY_SCALE must not be negative, got %v", c.Simulation.LatencyScale)
	}
	if len(c.Simulation.Currency) != 3 {
		return errs.Wrapf(ErrInvalidConfig, "SIM_CURRENCY must be an ISO 4217 code, got %q", c.Simulation.Currency)
	}
	if u, err := url.Parse(c.Simulation.AssetBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return errs.Wrapf(ErrInvalidConfig, "SIM_ASSET_BASE_URL %q", c.Simulation.AssetBaseURL)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Rome",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Simulation: SimulationConfig{
			LatencyScale:       0,
			SessionPersistence: "always",
			Currency:           "eur",
			AssetBaseURL:       "https://assets.test",
			User: DemoUserConfig{
				ID:      "123456789",
				Name:    "Mario Rossi",
				Email:   "mario.rossi@example.com",
				Picture: "https://assets.test/avatar.jpg",
			},
		},
	}
}
