package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// Database configuration
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// Token configuration
	SecretKey          string
	Algorithm          string
	AccessTokenExpires time.Duration
	BCryptCost         int

	// Redis-backed rate limiting for the auth endpoints
	RedisURL      string
	AuthRateLimit int

	// Image assets
	ImageBaseURL string
	S3BucketName string
	AWSRegion    string

	LogLevel string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"https://localhost:3000",
	"https://localhost:8000",
	"https://www.dippingsauce.net",
	"https://admin.dippingsauce.net",
}

// LoadConfig creates a new Config instance from environment variables.
// Missing or malformed token settings are reported as an error so the
// process can refuse to start.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "database.db")
	v.SetDefault("AUTH_RATE_LIMIT", 10)
	v.SetDefault("IMAGE_BASE_URL", "/static/img")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		ServerHost:    v.GetString("SERVER_HOST"),
		ServerPort:    v.GetString("SERVER_PORT"),
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:   v.GetString("DATABASE_URL"),
		DBHost:        v.GetString("DB_HOST"),
		DBPort:        v.GetString("DB_PORT"),
		DBUser:        v.GetString("DB_USER"),
		DBPassword:    v.GetString("DB_PASSWORD"),
		DBName:        v.GetString("DB_NAME"),
		DBSSLMode:     v.GetString("DB_SSL_MODE"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		SecretKey:     v.GetString("SECRET_KEY"),
		Algorithm:     strings.ToUpper(v.GetString("ALGORITHM")),
		RedisURL:      v.GetString("REDIS_URL"),
		AuthRateLimit: v.GetInt("AUTH_RATE_LIMIT"),
		ImageBaseURL:  strings.TrimSuffix(v.GetString("IMAGE_BASE_URL"), "/"),
		S3BucketName:  v.GetString("S3_BUCKET_NAME"),
		AWSRegion:     v.GetString("AWS_REGION"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	cfg.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = defaultOrigins
	}

	var errs []error
	if raw := strings.TrimSpace(v.GetString("ACCESS_TOKEN_EXPIRE_MINUTES")); raw != "" {
		minutes, err := parseMinutes(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "ACCESS_TOKEN_EXPIRE_MINUTES", Message: err.Error()})
		} else {
			cfg.AccessTokenExpires = minutes
		}
	}

	if raw := strings.TrimSpace(v.GetString("BCRYPT_COST")); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "BCRYPT_COST", Message: fmt.Sprintf("must be an integer, got %q", raw)})
		} else {
			cfg.BCryptCost = cost
		}
	}

	if err := ValidateConfig(cfg, errs...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PostgresDSN returns the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	return u.String()
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func parseMinutes(raw string) (time.Duration, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("must be an integer number of minutes, got %q", raw)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", minutes)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
