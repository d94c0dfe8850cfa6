package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pageza/dippingsauce/backend/internal/middleware"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// AuthHandler serves signup, token and current-user endpoints
type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes mounts the handler under /auth. limit, when not nil,
// guards the credential endpoints.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter, requireAuth, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	auth := router.Group("/auth")
	{
		auth.POST("/signup", limit, h.Signup)
		auth.POST("/token", limit, h.Token)
		auth.GET("/me", requireAuth, h.Me)
	}
}

// Signup registers a user from a form-encoded username and password
func (h *AuthHandler) Signup(c *gin.Context) {
	var creds types.Credentials
	if err := c.ShouldBindWith(&creds, binding.Form); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	created(c, user)
}

// Token exchanges form-encoded credentials for a bearer token
func (h *AuthHandler) Token(c *gin.Context) {
	var creds types.Credentials
	if err := c.ShouldBindWith(&creds, binding.Form); err != nil {
		_ = c.Error(bindingError(err))
		return
	}

	token, err := h.auth.Authenticate(c.Request.Context(), creds.Username, creds.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// Me returns the user the bearer token was issued to
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), middleware.Username(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}
