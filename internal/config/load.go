package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. PHONESTORE_SERVER_PORT or PHONESTORE_DATABASE_URL.
const EnvPrefix = "PHONESTORE"

// Defaults mirror the values the storefront has always run with.
const (
	DefaultPort       = 5000
	DefaultLogLevel   = "info"
	DefaultDBURL      = "postgres://root@localhost:5432/dbphonestore?sslmode=disable"
	DefaultImagesDir  = "public/images/products"
	defaultConfigName = "config"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, which
// take precedence over defaults. A .env file in the working directory is
// loaded into the process environment first if present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers a default for every key so that AutomaticEnv can
// resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.url", DefaultDBURL)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")
	v.SetDefault("database.ping_timeout", "5s")

	v.SetDefault("static.images_dir", DefaultImagesDir)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}
