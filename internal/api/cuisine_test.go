package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/testhelpers"
)

func TestCuisineCRUD(t *testing.T) {
	app := SetupTestRouter(t, nil)
	token := app.Token(t)

	w := app.PerformRequest(http.MethodPost, "/reviews/cuisine", gin.H{"name": "thai"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var cuisine models.Cuisine
	decode(t, w, &cuisine)
	assert.Equal(t, "thai", cuisine.Name)

	path := fmt.Sprintf("/reviews/cuisine/%d", cuisine.ID)

	w = app.PerformRequest(http.MethodPatch, path, gin.H{"name": "lao"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.PerformRequest(http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Cuisine
	decode(t, w, &got)
	assert.Equal(t, "lao", got.Name)

	w = app.PerformRequest(http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = app.PerformRequest(http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cuisine not found", errorMessage(t, w))
}

func TestListCuisinesSortedByName(t *testing.T) {
	app := SetupTestRouter(t, nil)
	for _, name := range []string{"mexican", "french", "korean"} {
		testhelpers.CreateCuisine(t, app.db, name)
	}

	w := app.PerformRequest(http.MethodGet, "/reviews/cuisines/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cuisines []models.Cuisine
	decode(t, w, &cuisines)
	require.Len(t, cuisines, 3)
	assert.Equal(t, "french", cuisines[0].Name)
	assert.Equal(t, "korean", cuisines[1].Name)
	assert.Equal(t, "mexican", cuisines[2].Name)

	w = app.PerformRequest(http.MethodGet, "/reviews/cuisines/html", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Select Filter")
	assert.Contains(t, w.Body.String(), ">french</option>")
}

func TestDeleteCuisineInUse(t *testing.T) {
	app := SetupTestRouter(t, nil)
	cuisine := testhelpers.CreateCuisine(t, app.db, "greek")
	testhelpers.CreateReview(t, app.db, models.Review{CuisineID: &cuisine.ID})

	w := app.PerformRequest(http.MethodDelete, fmt.Sprintf("/reviews/cuisine/%d", cuisine.ID), nil, app.Token(t))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Cuisine is still used by reviews", errorMessage(t, w))
}
