package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// TagHandler serves tag CRUD under the /recipes prefix
type TagHandler struct {
	tags     TagStore
	renderer *render.Renderer
}

func NewTagHandler(tags TagStore, renderer *render.Renderer) *TagHandler {
	return &TagHandler{tags: tags, renderer: renderer}
}

func (h *TagHandler) RegisterRoutes(recipes *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	recipes.POST("/tag", requireAuth, h.CreateTag)
	recipes.GET("/tags/", h.ListTags)
	recipes.POST("/tags/", h.ListTags)
	recipes.GET("/tags/html", h.ListTagsHTML)
	recipes.GET("/tag/:id", h.GetTag)
	recipes.PATCH("/tag/:id", requireAuth, h.UpdateTag)
	recipes.DELETE("/tag/:id", requireAuth, h.DeleteTag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req types.CreateTagRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// ListTags returns a page of tags. POST is accepted as well as GET.
func (h *TagHandler) ListTags(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tags, err := h.tags.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// ListTagsHTML renders the tag filter options
func (h *TagHandler) ListTagsHTML(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tags, err := h.tags.List(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fragment, err := h.renderer.TagOptions(tags)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeHTML(c, http.StatusOK, fragment)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tag, err := h.tags.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req types.UpdateTagRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	tag, err := h.tags.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, okResponse)
}
