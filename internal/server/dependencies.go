package server

import (
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/api"
	"github.com/pageza/dippingsauce/backend/internal/middleware"
	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/repository"
	"github.com/pageza/dippingsauce/backend/internal/service"
)

// NewDependencies builds the repositories and services backed by db. The
// auth rate limit and image store are left for the caller to attach.
func NewDependencies(cfg *config.Config, db *gorm.DB, tokens *service.TokenService) api.Dependencies {
	return api.Dependencies{
		DB:          db,
		Auth:        service.NewAuthService(repository.NewUserRepository(db), tokens, cfg.BCryptCost),
		Tags:        repository.NewTagRepository(db),
		Cuisines:    repository.NewCuisineRepository(db),
		Recipes:     repository.NewRecipeRepository(db),
		Reviews:     repository.NewReviewRepository(db),
		Renderer:    render.New(cfg.ImageBaseURL),
		RequireAuth: middleware.RequireAuth(tokens),
	}
}
