package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Static   StaticConfig   `mapstructure:"static" validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// LogFile switches logging from stdout to a size-rotated file.
	LogFile         string        `mapstructure:"log_file"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains the connection string and pool settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url" validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
	PingTimeout     time.Duration `mapstructure:"ping_timeout" validate:"gt=0"`
}

// StaticConfig locates the product image files served under /images/products.
type StaticConfig struct {
	ImagesDir string `mapstructure:"images_dir" validate:"required"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
