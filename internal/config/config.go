package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	CORSOrigins []string
	Catalog     CatalogConfig
	Database    DatabaseConfig
	Export      ExportConfig
	JWT         JWTConfig
	RateLimit   RateLimitConfig
}

// CatalogConfig holds the document header and rendering switches
type CatalogConfig struct {
	Title                string
	Description          string
	Version              string
	ServerURL            string
	PreserveLegacyShapes bool
}

// DatabaseConfig holds the snapshot store configuration
type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// ExportConfig holds the export target
type ExportConfig struct {
	Dir        string
	MaxRetries int
	RetryDelay time.Duration
}

// JWTConfig holds JWT configuration. An empty secret disables
// authentication of snapshot publishing.
type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// RateLimitConfig holds the per-client token bucket
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load loads configuration from environment variables and a .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Catalog: CatalogConfig{
			Title:                v.GetString("CATALOG_TITLE"),
			Description:          v.GetString("CATALOG_DESCRIPTION"),
			Version:              v.GetString("CATALOG_VERSION"),
			ServerURL:            v.GetString("CATALOG_SERVER_URL"),
			PreserveLegacyShapes: v.GetBool("CATALOG_PRESERVE_LEGACY_SHAPES"),
		},
		Database: DatabaseConfig{
			Path:            v.GetString("SNAPSHOT_DB_PATH"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Export: ExportConfig{
			Dir:        v.GetString("EXPORT_DIR"),
			MaxRetries: v.GetInt("EXPORT_MAX_RETRIES"),
			RetryDelay: v.GetDuration("EXPORT_RETRY_DELAY"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CATALOG_TITLE", "Business API")
	v.SetDefault("CATALOG_DESCRIPTION", "Store, HR, delivery and work order endpoints")
	v.SetDefault("CATALOG_VERSION", "1.0.0")
	v.SetDefault("CATALOG_SERVER_URL", "http://localhost:5090")
	v.SetDefault("CATALOG_PRESERVE_LEGACY_SHAPES", true)
	v.SetDefault("SNAPSHOT_DB_PATH", "./data/catalog.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("DB_MAX_IDLE_CONNS", 1)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("EXPORT_DIR", "./out")
	v.SetDefault("EXPORT_MAX_RETRIES", 3)
	v.SetDefault("EXPORT_RETRY_DELAY", 100*time.Millisecond)
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.Catalog.Title == "" || c.Catalog.Version == "" {
		return fmt.Errorf("catalog title and version cannot be empty")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path cannot be empty")
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("max open connections must be at least 1")
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export directory cannot be empty")
	}
	if c.JWT.ExpiryHours < 1 {
		return fmt.Errorf("jwt expiry must be at least 1 hour")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthEnabled reports whether snapshot publishing requires a bearer token
func (c *Config) AuthEnabled() bool {
	return c.JWT.Secret != ""
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
