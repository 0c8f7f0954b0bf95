package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the shop service.
type Config struct {
	AppPort        string
	AppEnv         string
	DatabaseDriver string
	DatabaseDSN    string
	DatabaseSeed   bool
	RabbitMQURL    string
	RabbitMQQueue  string
}

// IsProduction reports whether the service runs with production logging.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// New returns a Viper instance with the service defaults applied and
// environment variables bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8001")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "TechGearWebShop.db")
	v.SetDefault("DATABASE_SEED", false)
	v.SetDefault("RABBITMQ_URL", "") // empty disables product events
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file from the working directory and then
// builds a Config from v. A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper builds a Config from the values already present in v.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:        v.GetString("APP_PORT"),
		AppEnv:         v.GetString("APP_ENV"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		DatabaseSeed:   v.GetBool("DATABASE_SEED"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:  v.GetString("RABBITMQ_QUEUE"),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("DATABASE_DSN must not be empty")
	}
	if !strings.HasPrefix(cfg.AppPort, ":") && !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	return cfg, nil
}
