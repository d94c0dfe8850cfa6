package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// Headers carrying page metadata for the single recipe fragment
const (
	PageTitleHeader       = "X-Page-Title"
	PageDescriptionHeader = "X-Page-Description"
)

// RecipeHandler handles recipe-related HTTP requests
type RecipeHandler struct {
	recipes  RecipeStore
	renderer *render.Renderer
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(recipes RecipeStore, renderer *render.Renderer) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, renderer: renderer}
}

// RegisterRoutes mounts the recipe routes on the /recipes group
func (h *RecipeHandler) RegisterRoutes(recipes *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	recipes.POST("/create/", requireAuth, h.CreateRecipe)
	recipes.GET("/all/", h.ListRecipes)
	recipes.GET("/all/html", h.ListRecipesHTML)
	recipes.GET("/:id", h.GetRecipe)
	recipes.GET("/:id/html", h.GetRecipeHTML)
	recipes.PATCH("/:id", requireAuth, h.UpdateRecipe)
	recipes.DELETE("/:id", requireAuth, h.DeleteRecipe)
}

// CreateRecipe handles recipe creation
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ListRecipes returns a page of recipes, optionally narrowed by ?tag=
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	tagID, err := parseFilter(c, "tag")
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), page, tagID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ListRecipesHTML renders recipe cards for the same query as ListRecipes
func (h *RecipeHandler) ListRecipesHTML(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	tagID, err := parseFilter(c, "tag")
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), page, tagID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fragment, err := h.renderer.RecipeCards(recipes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeHTML(c, http.StatusOK, fragment)
}

// GetRecipe retrieves a recipe by ID
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// GetRecipeHTML renders the recipe detail page body. A missing recipe is
// answered with the error fragment rather than JSON.
func (h *RecipeHandler) GetRecipeHTML(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			h.notFoundHTML(c)
			return
		}
		_ = c.Error(err)
		return
	}

	fragment, err := h.renderer.RecipeDetail(recipe)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header(PageTitleHeader, render.PageTitle(recipe))
	c.Header(PageDescriptionHeader, render.PageDescription(recipe))
	writeHTML(c, http.StatusOK, fragment)
}

func (h *RecipeHandler) notFoundHTML(c *gin.Context) {
	fragment, err := h.renderer.ErrorFragment(render.NotFoundMessage)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeHTML(c, http.StatusNotFound, fragment)
}

// UpdateRecipe applies a partial update
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req types.UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe removes a recipe
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, okResponse)
}
