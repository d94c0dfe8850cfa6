package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/render"
)

// Dependencies are the collaborators the HTTP handlers are built from.
// AuthLimit and Images are optional.
type Dependencies struct {
	DB          *gorm.DB
	Auth        Authenticator
	Tags        TagStore
	Cuisines    CuisineStore
	Recipes     RecipeStore
	Reviews     ReviewStore
	Images      ImageUploader
	Renderer    *render.Renderer
	RequireAuth gin.HandlerFunc
	AuthLimit   gin.HandlerFunc
}

// RegisterRoutes mounts every catalog endpoint on router
func RegisterRoutes(router gin.IRouter, deps Dependencies) error {
	RegisterValidators()

	NewHealthHandler(deps.DB).RegisterRoutes(router)
	NewAuthHandler(deps.Auth).RegisterRoutes(router, deps.RequireAuth, deps.AuthLimit)

	recipes := router.Group("/recipes")
	{
		NewTagHandler(deps.Tags, deps.Renderer).RegisterRoutes(recipes, deps.RequireAuth)
		NewRecipeHandler(deps.Recipes, deps.Renderer).RegisterRoutes(recipes, deps.RequireAuth)
	}

	reviews := router.Group("/reviews")
	{
		NewCuisineHandler(deps.Cuisines, deps.Renderer).RegisterRoutes(reviews, deps.RequireAuth)
		NewReviewHandler(deps.Reviews, deps.Renderer).RegisterRoutes(reviews, deps.RequireAuth)
	}

	if deps.Images != nil {
		NewImageHandler(deps.Images, deps.Recipes, deps.Reviews, deps.Renderer).RegisterRoutes(router, deps.RequireAuth)
	}
	return nil
}
