package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SupportedAlgorithms lists the HMAC signing methods accepted for ALGORITHM
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// ValidateConfig checks that every value the process cannot run without is
// present. Earlier parse failures can be passed in so all problems are
// reported together.
func ValidateConfig(cfg *Config, prior ...error) error {
	errs := append([]error(nil), prior...)

	if cfg.SecretKey == "" {
		errs = append(errs, ValidationError{Field: "SECRET_KEY", Message: "required environment variable is not set"})
	}

	if cfg.Algorithm == "" {
		errs = append(errs, ValidationError{Field: "ALGORITHM", Message: "required environment variable is not set"})
	} else if !isSupportedAlgorithm(cfg.Algorithm) {
		errs = append(errs, ValidationError{Field: "ALGORITHM", Message: fmt.Sprintf("unsupported signing algorithm %q", cfg.Algorithm)})
	}

	if cfg.AccessTokenExpires <= 0 && !hasField(prior, "ACCESS_TOKEN_EXPIRE_MINUTES") {
		errs = append(errs, ValidationError{Field: "ACCESS_TOKEN_EXPIRE_MINUTES", Message: "required environment variable is not set"})
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "must not be empty for the sqlite driver"})
		}
	case "postgres":
		if cfg.DatabaseURL == "" && (cfg.DBHost == "" || cfg.DBName == "") {
			errs = append(errs, ValidationError{Field: "DATABASE_URL", Message: "DATABASE_URL or DB_HOST and DB_NAME are required for the postgres driver"})
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)})
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{Field: "CORS_ALLOWED_ORIGINS", Message: fmt.Sprintf("origin %q must start with http:// or https://", origin)})
		}
	}

	// zero selects bcrypt.DefaultCost
	if cfg.BCryptCost != 0 && (cfg.BCryptCost < bcrypt.MinCost || cfg.BCryptCost > bcrypt.MaxCost) {
		errs = append(errs, ValidationError{Field: "BCRYPT_COST", Message: fmt.Sprintf("must be 0 or between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cfg.BCryptCost)})
	}

	if cfg.RedisURL != "" && cfg.AuthRateLimit <= 0 {
		errs = append(errs, ValidationError{Field: "AUTH_RATE_LIMIT", Message: "must be positive when REDIS_URL is set"})
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

func isSupportedAlgorithm(alg string) bool {
	for _, a := range SupportedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

func hasField(errs []error, field string) bool {
	for _, err := range errs {
		var ve ValidationError
		if errors.As(err, &ve) && ve.Field == field {
			return true
		}
	}
	return false
}
