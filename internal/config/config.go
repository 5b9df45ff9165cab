package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv           string `env:"GO_ENV" default:"production"`
	EnvironmentType string `env:"ENVIRONMENT_TYPE"` // suffix of the sibling function names, e.g. "Dev"
	Handler         string `env:"HANDLER"`          // endpoint served by the lambda binary

	// HTTP server
	HTTPPort       int           `env:"HTTP_PORT" default:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"10s"`
	RateLimitRPS   int           `env:"RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" default:"40"`

	// Database
	DBEndpoint      string `env:"ENDPOINT" required:"true"`
	DBPort          int    `env:"PORT" default:"5432"`
	DBUser          string `env:"DBUSER" required:"true"`
	DBPassword      string `env:"DBPASSWORD"`
	DBName          string `env:"DATABASE" required:"true"`
	DBSSLMode       string `env:"DB_SSLMODE" default:"require"`
	DBEncryptionKey string `env:"DB_ENCRYPTION_KEY"` // accepted so deployments share one env file; unused

	// Authentication
	TokenSecret string `env:"TOKEN_SECRET_KEY" required:"true"`

	// Localization
	BaseLanguageID int `env:"BASE_LANGUAGE_ID" default:"165"`

	// Redis cache for detected languages
	RedisURL         string        `env:"REDIS_URL"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	LanguageCacheTTL time.Duration `env:"LANGUAGE_CACHE_TTL" default:"24h"`

	// AWS
	AWSRegion          string `env:"REGION" default:"us-east-1"`
	AWSAccessKeyID     string `env:"ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	BucketName         string `env:"BUCKET_NAME"`
	S3BucketURL        string `env:"S3_BUCKET_URL"` // accepted so deployments share one env file; unused

	// Logging
	LogLevel string `env:"LOGGING_LEVEL" default:"info"`
}

// LoadConfig loads configuration from environment variables, reading a .env
// file first when one is present.
func LoadConfig() (*Config, error) {
	// A missing .env is fine: deployed functions get their variables from the host.
	_ = godotenv.Load(".env")

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "production"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.EnvironmentType, "ENVIRONMENT_TYPE", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.Handler, "HANDLER", ""); err != nil {
		return nil, err
	}

	// HTTP server
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.RequestTimeout, "REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitRPS, "RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.RateLimitBurst, "RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}

	// Database
	if err := loadEnvStringRequired(&config.DBEndpoint, "ENDPOINT"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.DBPort, "PORT", 5432); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.DBUser, "DBUSER"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DBPassword, "DBPASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvStringRequired(&config.DBName, "DATABASE"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DBSSLMode, "DB_SSLMODE", "require"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DBEncryptionKey, "DB_ENCRYPTION_KEY", ""); err != nil {
		return nil, err
	}

	// Authentication
	if err := loadEnvStringRequired(&config.TokenSecret, "TOKEN_SECRET_KEY"); err != nil {
		return nil, err
	}

	// Localization
	if err := loadEnvInt(&config.BaseLanguageID, "BASE_LANGUAGE_ID", 165); err != nil {
		return nil, err
	}

	// Redis
	if err := loadEnvString(&config.RedisURL, "REDIS_URL", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.RedisPassword, "REDIS_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.LanguageCacheTTL, "LANGUAGE_CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	// AWS
	if err := loadEnvString(&config.AWSRegion, "REGION", "us-east-1"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.AWSAccessKeyID, "ACCESS_KEY_ID", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.AWSSecretAccessKey, "SECRET_ACCESS_KEY", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.BucketName, "BUCKET_NAME", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.S3BucketURL, "S3_BUCKET_URL", ""); err != nil {
		return nil, err
	}

	// Logging
	if err := loadEnvString(&config.LogLevel, "LOGGING_LEVEL", "info"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}
	if c.DBPort < 1 || c.DBPort > 65535 {
		errors = append(errors, "PORT must be between 1 and 65535")
	}
	if c.RequestTimeout <= 0 {
		errors = append(errors, "REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitRPS < 1 || c.RateLimitBurst < 1 {
		errors = append(errors, "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.BaseLanguageID < 1 {
		errors = append(errors, "BASE_LANGUAGE_ID must be positive")
	}
	if c.Handler != "" && !contains(Handlers, c.Handler) {
		errors = append(errors, fmt.Sprintf("HANDLER must be one of: %s", strings.Join(Handlers, ", ")))
	}
	if c.ServesPictures() && c.BucketName == "" {
		errors = append(errors, "BUCKET_NAME is required when the delete-picture endpoint is served")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// Handler names accepted by the lambda entrypoint.
const (
	HandlerActiveNotifications = "notifications"
	HandlerDeletePicture       = "delete-picture"
	HandlerQuestions           = "questions"
)

var Handlers = []string{HandlerActiveNotifications, HandlerDeletePicture, HandlerQuestions}

// ServesPictures reports whether the delete-picture endpoint is served: always
// by the HTTP server (no HANDLER), and by the lambda binary only when selected.
func (c *Config) ServesPictures() bool {
	return c.Handler == "" || c.Handler == HandlerDeletePicture
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// PostgresDSN builds a keyword/value DSN understood by both pgx and gorm's postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBEndpoint, c.DBPort, c.DBUser, quoteDSN(c.DBPassword), c.DBName, c.DBSSLMode)
}

// LanguageFunctionName is the name of the sibling function resolving Accept-Language.
func (c *Config) LanguageFunctionName() string {
	return "ProfilesGetLanguage" + c.EnvironmentType
}

// RedisAddr returns host:port of REDIS_URL, or "" when the cache is disabled.
func (c *Config) RedisAddr() string {
	if c.RedisURL == "" {
		return ""
	}
	if u, err := url.Parse(c.RedisURL); err == nil && u.Host != "" {
		return u.Host
	}
	addr := strings.TrimPrefix(c.RedisURL, "redis://")
	return strings.TrimPrefix(addr, "rediss://")
}

func quoteDSN(v string) string {
	if v == "" {
		return "''"
	}
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
