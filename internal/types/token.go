package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The subject is the
// username the token was issued to.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Username returns the subject claim
func (c *TokenClaims) Username() string {
	return c.Subject
}

// TokenResponse is the body returned by the token endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Credentials is the form-encoded username/password pair accepted by the
// signup and token endpoints
type Credentials struct {
	Username string `form:"username" binding:"required,max=150"`
	Password string `form:"password" binding:"required,max=72"`
}
