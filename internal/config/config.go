package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"nova-fund/internal/config/configs"
)

// Config aggregates all configuration sections of the service. Fields are
// populated from environment variables using caarlos0/env; nested structs
// are read with their envPrefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// logged.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Store  configs.Store    `envPrefix:"STORE_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Auth   configs.Auth     `envPrefix:"AUTH_"`
	Ledger configs.Ledger   `envPrefix:"LEDGER_"`
}

// Load reads the optional dotenv files, then the environment, and validates
// the result. Variables already set in the environment win over dotenv
// values.
func Load(dotenv ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load dotenv: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
