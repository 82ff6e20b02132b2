package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Password hashing cost bounds. The lower bound is policy, the upper one is bcrypt's own limit.
const (
	MinPasswordHashCost = 10
	MaxPasswordHashCost = 31
)

// Config holds application configuration loaded from environment variables.
// It is built once at startup and passed explicitly to the components that need it.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"credential-auth"`
	Env      string `env:"APP_ENV" envDefault:"development"` // development, staging, production
	HTTPAddr string `env:"HTTP_ADDR" envDefault:"0.0.0.0:3333"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`

	// Database
	DatabaseURL   string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns    int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns    int32         `env:"DB_MIN_CONNS" envDefault:"2"`
	DBMaxConnLife time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	// Migrations
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"db/migrations"`
	AutoMigrate   bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// Token signing
	AuthSecret string        `env:"AUTH_SECRET,required,notEmpty"`
	TokenTTL   time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h"`

	// Password hashing
	PasswordHashCost int `env:"PASSWORD_HASH_COST" envDefault:"12"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""` // comma-separated, empty allows any origin

	// HTTP access log toggle
	HTTPLogEnabled bool `env:"HTTP_LOG_ENABLED" envDefault:"false"`

	// Debug metrics (/api/debug/vars)
	DebugMetricsEnabled bool `env:"DEBUG_METRICS_ENABLED" envDefault:"false"`
}

// Load loads configuration from environment variables and validates it.
// A missing DATABASE_URL or AUTH_SECRET is an error.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if err := ValidatePasswordHashCost(c.PasswordHashCost); err != nil {
		errs = append(errs, err)
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS, got %d", c.DBMinConns))
	}
	return errors.Join(errs...)
}

// ValidatePasswordHashCost enforces the hashing cost policy for every path that builds a hasher.
func ValidatePasswordHashCost(cost int) error {
	if cost < MinPasswordHashCost || cost > MaxPasswordHashCost {
		return fmt.Errorf("PASSWORD_HASH_COST must be between %d and %d, got %d",
			MinPasswordHashCost, MaxPasswordHashCost, cost)
	}
	return nil
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
