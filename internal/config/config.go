// Package config reads the loader settings from the environment. A .env file
// in the working directory is loaded first.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/emrgen/cataviz/internal/dates"
	_ "github.com/joho/godotenv/autoload"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env      string `env:"ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// sqlite or postgres
	DBDriver    string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBPath      string `env:"DB_PATH" envDefault:"cataviz.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	// Input files, matched by name inside DataDir.
	DataDir         string `env:"DATA_DIR" envDefault:"data"`
	AuthPattern     string `env:"AUTH_PATTERN" envDefault:"P1486_*.UTF8"`
	Pre1970Pattern  string `env:"PRE1970_PATTERN" envDefault:"P1187_*.UTF8"`
	Post1970Pattern string `env:"POST1970_PATTERN" envDefault:"P174_*.UTF8"`

	// publication years are kept strictly between these bounds
	YearMin int `env:"YEAR_MIN" envDefault:"1400"`
	YearMax int `env:"YEAR_MAX" envDefault:"2030"`

	// shared identity cache, in process when empty
	RedisURL string `env:"REDIS_URL"`

	WatchSchedule string `env:"WATCH_SCHEDULE" envDefault:"@every 10m"`
}

// LoadConfig parses the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.YearMin >= c.YearMax {
		return fmt.Errorf("%w: YEAR_MIN %d must be below YEAR_MAX %d", ErrInvalidConfig, c.YearMin, c.YearMax)
	}
	if c.DBDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL is required with the postgres driver", ErrInvalidConfig)
	}
	return nil
}

// Window returns the accepted publication years.
func (c *Config) Window() dates.Window {
	return dates.Window{Min: c.YearMin, Max: c.YearMax}
}
