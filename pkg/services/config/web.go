package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// WebConfig holds the web server settings. Values come from an optional YAML
// file with PIZZAPULSE_-prefixed environment variables taking precedence.
type WebConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	DefaultTopN     int           `mapstructure:"default_top_n" validate:"gte=1"`
	CacheCapacity   int           `mapstructure:"cache_capacity" validate:"gte=0"`
}

// LoadWebConfig reads the config at path. An empty path loads defaults plus
// environment overrides only.
func LoadWebConfig(path string) (*WebConfig, error) {
	v := viper.New()
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("default_top_n", 5)
	v.SetDefault("cache_capacity", 16)

	v.SetEnvPrefix("PIZZAPULSE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse web config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid web config: %w", err)
	}

	return &cfg, nil
}
