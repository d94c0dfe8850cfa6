package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pageza/dippingsauce/backend/internal/api"
	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/middleware"
	"github.com/pageza/dippingsauce/backend/internal/mocks"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

func allowAll(c *gin.Context) { c.Next() }

func observedRouter() (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)
	router := gin.New()
	router.Use(middleware.ErrorHandler(zap.New(core)))
	return router, logs
}

func TestStoreFailureIsNotLeaked(t *testing.T) {
	router, logs := observedRouter()
	tags := new(mocks.MockTagStore)
	tags.On("List", mock.Anything, types.Page{Offset: 0, Limit: 100}).
		Return(nil, apperr.Internal(errors.New("connection reset by peer")))
	api.NewTagHandler(tags, render.New("")).RegisterRoutes(router.Group("/recipes"), allowAll)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/tags/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection reset")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "internal error", entry.Message)
	assert.Equal(t, "connection reset by peer", entry.ContextMap()["error"])
	tags.AssertExpectations(t)
}

func TestRecipeHTMLStoreFailure(t *testing.T) {
	router, _ := observedRouter()
	recipes := new(mocks.MockRecipeStore)
	recipes.On("Get", mock.Anything, uint(3)).Return(nil, apperr.Internal(errors.New("timeout")))
	api.NewRecipeHandler(recipes, render.New("")).RegisterRoutes(router.Group("/recipes"), allowAll)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes/3/html", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), render.NotFoundMessage)
	recipes.AssertExpectations(t)
}

func TestUploadStoreFailure(t *testing.T) {
	router, logs := observedRouter()
	recipes := new(mocks.MockRecipeStore)
	images := new(mocks.MockImageUploader)
	recipes.On("Get", mock.Anything, uint(7)).Return(&models.Recipe{ID: 7, Name: "Beef Stew"}, nil)
	images.On("UploadJPEG", mock.Anything, "Beef Stew", jpegBytes).
		Return("", apperr.Internal(errors.New("s3: access denied")))
	api.NewImageHandler(images, recipes, nil, render.New("")).RegisterRoutes(router, allowAll)

	app := &testApp{router: router}
	w := app.PerformUpload(t, "/recipes/7/image", "image", jpegBytes, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "access denied")
	assert.Equal(t, 1, logs.Len())
	recipes.AssertExpectations(t)
	images.AssertExpectations(t)
}
