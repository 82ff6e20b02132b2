package container

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credential-auth/config"
	pginfra "github.com/oksasatya/go-credential-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-credential-auth/pkg/helpers"
)

// Database is the store handle shared by the repository and the health check.
// *pgxpool.Pool satisfies it.
type Database interface {
	pginfra.DBTX
	Ping(ctx context.Context) error
}

// Container holds the components built once at startup. Nothing in it is mutated afterwards.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	DB     Database
	Hasher *helpers.PasswordHasher
	Issuer *helpers.JWTIssuer
}

// New builds the hasher and token issuer from cfg. A hashing cost below policy or an unusable
// signing secret is reported here, before the server accepts traffic.
func New(cfg *config.Config, logger *logrus.Logger, db Database) (*Container, error) {
	if err := config.ValidatePasswordHashCost(cfg.PasswordHashCost); err != nil {
		return nil, err
	}
	hasher, err := helpers.NewPasswordHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to init password hasher: %w", err)
	}
	issuer, err := helpers.NewJWTIssuer(cfg.AuthSecret, cfg.TokenTTL, cfg.AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to init token issuer: %w", err)
	}
	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Hasher: hasher,
		Issuer: issuer,
	}, nil
}
