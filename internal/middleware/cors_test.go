package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORS(origins))
	router.GET("/recipes/1/html", func(c *gin.Context) {
		c.Header("X-Page-Title", "Chili")
		c.String(http.StatusOK, "<div></div>")
	})
	return router
}

func TestCORSAllowedOrigin(t *testing.T) {
	router := corsRouter([]string{"https://www.dippingsauce.net"})

	req := httptest.NewRequest(http.MethodGet, "/recipes/1/html", nil)
	req.Header.Set("Origin", "https://www.dippingsauce.net")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://www.dippingsauce.net", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Page-Title")
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Page-Description")
}

func TestCORSPreflight(t *testing.T) {
	router := corsRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/recipes/1/html", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	router := corsRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/recipes/1/html", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
