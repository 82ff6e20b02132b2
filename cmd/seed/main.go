package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/caarlos0/env/v11"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-credential-auth/config"
	pginfra "github.com/oksasatya/go-credential-auth/internal/infrastructure/postgres"
	"github.com/oksasatya/go-credential-auth/pkg/helpers"
)

type seedConfig struct {
	DatabaseURL      string `env:"DATABASE_URL,required,notEmpty"`
	Email            string `env:"SEED_EMAIL" envDefault:"demo@example.com"`
	Password         string `env:"SEED_PASSWORD,required,notEmpty"`
	PasswordHashCost int    `env:"PASSWORD_HASH_COST" envDefault:"12"`
	Env              string `env:"APP_ENV" envDefault:"development"`
}

// loadSeedConfig reads the seed settings and applies the same hashing cost policy as the server.
func loadSeedConfig() (seedConfig, error) {
	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		return seedConfig{}, err
	}
	if err := config.ValidatePasswordHashCost(cfg.PasswordHashCost); err != nil {
		return seedConfig{}, err
	}
	return cfg, nil
}

func main() {
	_ = godotenv.Load()

	cfg, err := loadSeedConfig()
	if err != nil {
		log.Fatalf("invalid seed configuration: %v", err)
	}
	logger := helpers.NewLogger("credential-auth-seed", cfg.Env, "")

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.WithError(err).Fatal("failed to open db")
	}
	defer func() { _ = db.Close() }()

	hasher, err := helpers.NewPasswordHasher(cfg.PasswordHashCost)
	if err != nil {
		logger.WithError(err).Fatal("failed to init password hasher")
	}
	hash, err := hasher.HashPassword(cfg.Password)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	created, err := pginfra.SeedUser(context.Background(), db, cfg.Email, hash)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed user")
	}
	helpers.LogInfo(logger, "seed finished", logrus.Fields{"email": cfg.Email, "created": created})
}
