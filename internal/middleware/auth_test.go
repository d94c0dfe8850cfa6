package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (*types.TokenClaims, error) {
	username, ok := s[token]
	if !ok {
		return nil, apperr.Unauthorized("")
	}
	return &types.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: username}}, nil
}

func TestRequireAuth(t *testing.T) {
	router := gin.New()
	router.GET("/private", RequireAuth(stubVerifier{"good": "alice"}), func(c *gin.Context) {
		c.String(http.StatusOK, Username(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer good", http.StatusOK, "alice"},
		{"lower-case scheme", "bearer good", http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.Contains(t, w.Body.String(), `"error"`)
			} else {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
