package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	DBPath         string        `env:"DB_PATH" envDefault:"scanshelf.db"`
	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://world.openfoodfacts.org"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"5s"`
	CacheTTL       time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"1h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
