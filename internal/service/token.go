package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless; there is no revocation before expiry.
type TokenService struct {
	secret  []byte
	method  jwt.SigningMethod
	expires time.Duration
	now     func() time.Time
}

// TokenOption customizes a TokenService
type TokenOption func(*TokenService)

// WithClock replaces the time source used for issuing and verifying
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service from the validated config
func NewTokenService(cfg *config.Config, opts ...TokenOption) (*TokenService, error) {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	s := &TokenService{
		secret:  []byte(cfg.SecretKey),
		method:  method,
		expires: cfg.AccessTokenExpires,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token for subject that expires after the configured
// duration
func (s *TokenService) Issue(subject string) (string, error) {
	now := s.now()
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expires)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal(fmt.Errorf("failed to sign token: %w", err))
	}
	return signed, nil
}

// Verify checks the signature, algorithm and expiry of tokenString. Any
// failure is reported as Unauthorized. It does not check that the subject
// still exists.
func (s *TokenService) Verify(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, &apperr.AppError{Code: apperr.CodeUnauthorized, Message: "Could not validate credentials", Cause: err}
	}
	if claims.Subject == "" {
		return nil, apperr.Unauthorized("")
	}
	return claims, nil
}
