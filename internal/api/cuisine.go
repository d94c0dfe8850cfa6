package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// CuisineHandler serves cuisine CRUD under the /reviews prefix
type CuisineHandler struct {
	cuisines CuisineStore
	renderer *render.Renderer
}

func NewCuisineHandler(cuisines CuisineStore, renderer *render.Renderer) *CuisineHandler {
	return &CuisineHandler{cuisines: cuisines, renderer: renderer}
}

func (h *CuisineHandler) RegisterRoutes(reviews *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	reviews.POST("/cuisine", requireAuth, h.CreateCuisine)
	reviews.GET("/cuisines/", h.ListCuisines)
	reviews.POST("/cuisines/", h.ListCuisines)
	reviews.GET("/cuisines/html", h.ListCuisinesHTML)
	reviews.GET("/cuisine/:id", h.GetCuisine)
	reviews.PATCH("/cuisine/:id", requireAuth, h.UpdateCuisine)
	reviews.DELETE("/cuisine/:id", requireAuth, h.DeleteCuisine)
}

func (h *CuisineHandler) CreateCuisine(c *gin.Context) {
	var req types.CreateCuisineRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	cuisine, err := h.cuisines.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cuisine)
}

// ListCuisines returns a page of cuisines. POST is accepted as well as GET.
func (h *CuisineHandler) ListCuisines(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cuisines, err := h.cuisines.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cuisines)
}

// ListCuisinesHTML renders the cuisine filter options
func (h *CuisineHandler) ListCuisinesHTML(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cuisines, err := h.cuisines.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fragment, err := h.renderer.CuisineOptions(cuisines)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeHTML(c, http.StatusOK, fragment)
}

func (h *CuisineHandler) GetCuisine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	cuisine, err := h.cuisines.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cuisine)
}

func (h *CuisineHandler) UpdateCuisine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req types.UpdateCuisineRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	cuisine, err := h.cuisines.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cuisine)
}

func (h *CuisineHandler) DeleteCuisine(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.cuisines.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, okResponse)
}
