package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration (admin catalog routes)
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Temporary build lifecycle
	TempBuildTTLHours int    `mapstructure:"TEMP_BUILD_TTL_HOURS"`
	ShareBaseURL      string `mapstructure:"SHARE_BASE_URL"`

	// Asset retrieval. Transport is "s3" (MinIO/S3 compatible, default) or
	// "http" (authenticated HTTP endpoint).
	AssetTransport string `mapstructure:"ASSET_TRANSPORT"`
	AssetEndpoint  string `mapstructure:"ASSET_ENDPOINT"`
	AssetAccessKey string `mapstructure:"ASSET_ACCESS_KEY"`
	AssetSecretKey string `mapstructure:"ASSET_SECRET_KEY"`
	AssetBucket    string `mapstructure:"ASSET_BUCKET"`
	AssetUseSSL    bool   `mapstructure:"ASSET_USE_SSL"`
	AssetBaseURL   string `mapstructure:"ASSET_BASE_URL"`
	AssetToken     string `mapstructure:"ASSET_TOKEN"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "gear_garage")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Temporary build defaults
	viper.SetDefault("TEMP_BUILD_TTL_HOURS", 72)
	viper.SetDefault("SHARE_BASE_URL", "http://localhost:3000")

	// Asset storage defaults
	viper.SetDefault("ASSET_TRANSPORT", "s3")
	viper.SetDefault("ASSET_ENDPOINT", "localhost:9000")
	viper.SetDefault("ASSET_ACCESS_KEY", "minioadmin")
	viper.SetDefault("ASSET_SECRET_KEY", "minioadmin")
	viper.SetDefault("ASSET_BUCKET", "gear-images")
	viper.SetDefault("ASSET_USE_SSL", false)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.TempBuildTTLHours <= 0 {
		return fmt.Errorf("TEMP_BUILD_TTL_HOURS must be positive")
	}

	switch config.AssetTransport {
	case "s3":
	case "http":
		if config.AssetBaseURL == "" {
			return fmt.Errorf("ASSET_BASE_URL is required for the http asset transport")
		}
	default:
		return fmt.Errorf("unknown ASSET_TRANSPORT %q", config.AssetTransport)
	}

	return nil
}

// TempBuildTTL returns the configured temporary build lifetime.
func (c *Config) TempBuildTTL() time.Duration {
	return time.Duration(c.TempBuildTTLHours) * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
