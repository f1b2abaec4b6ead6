package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port         string `env:"PORT" envDefault:"8000"`
	DatabaseURL  string `env:"DATABASE_URL"` // empty means no store: serve the static fallback
	DatabaseName string `env:"DATABASE_NAME" envDefault:"bespoke_cakes"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
