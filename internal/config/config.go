package config

import (
	"github.com/caarlos0/env/v11"

	"pagecast/internal/config/configs"
)

// Config aggregates every configuration section. Each nested struct is
// parsed from the environment under its envPrefix; see the configs package
// for variables and defaults.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Dispatch  configs.Dispatch  `envPrefix:"DISPATCH_"`
	Messenger configs.Messenger `envPrefix:"MESSENGER_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
