package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// TokenVerifier is an interface for validating bearer tokens
type TokenVerifier interface {
	Verify(token string) (*types.TokenClaims, error)
}

// RequireAuth rejects requests without a valid bearer token. On success
// the claims and username are stored in the context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			WriteError(c, apperr.Unauthorized("Not authenticated"))
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			WriteError(c, apperr.Unauthorized(""))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UsernameKey, claims.Username())
		c.Next()
	}
}

// Username returns the authenticated username, or "" outside RequireAuth
func Username(c *gin.Context) string {
	return c.GetString(UsernameKey)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
