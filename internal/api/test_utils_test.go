package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/api"
	"github.com/pageza/dippingsauce/backend/internal/middleware"
	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/server"
	"github.com/pageza/dippingsauce/backend/internal/service"
	"github.com/pageza/dippingsauce/backend/internal/storage"
	"github.com/pageza/dippingsauce/backend/internal/testhelpers"
)

// jpegBytes starts with the JPEG SOI marker, enough for content sniffing
var jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{0x01}, 64)...)

type fakeUploader struct {
	mu      sync.Mutex
	uploads map[string][]byte
}

func (f *fakeUploader) UploadJPEG(_ context.Context, name string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	key := storage.ImageKey(name)
	f.uploads[key] = data
	return key, nil
}

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *service.TokenService
	images *fakeUploader
}

// SetupTestRouter assembles every route over a fresh SQLite database. A
// nil uploader leaves the image routes unregistered.
func SetupTestRouter(t *testing.T, images *fakeUploader) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	cfg := &config.Config{
		SecretKey:          "test-secret",
		Algorithm:          "HS256",
		AccessTokenExpires: time.Hour,
		BCryptCost:         bcrypt.MinCost,
		ImageBaseURL:       render.DefaultImageBaseURL,
	}
	tokens, err := service.NewTokenService(cfg)
	require.NoError(t, err)

	deps := server.NewDependencies(cfg, db, tokens)
	if images != nil {
		deps.Images = images
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	require.NoError(t, api.RegisterRoutes(router, deps))

	return &testApp{router: router, db: db, tokens: tokens, images: images}
}

// Token issues a bearer token for a user that need not exist
func (a *testApp) Token(t *testing.T) string {
	t.Helper()
	token, err := a.tokens.Issue("tester")
	require.NoError(t, err)
	return token
}

// PerformRequest sends body as JSON, with a bearer token when token is set
func (a *testApp) PerformRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return a.serve(req, token)
}

// PerformForm sends values form-encoded
func (a *testApp) PerformForm(method, path string, values url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.serve(req, token)
}

// PerformUpload sends data as the multipart field named field
func (a *testApp) PerformUpload(t *testing.T, path, field string, data []byte, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "upload.jpg")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return a.serve(req, token)
}

func (a *testApp) serve(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp middleware.ErrorResponse
	decode(t, w, &resp)
	return resp.Error
}
