package api

import (
	"context"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// Authenticator registers users and exchanges credentials for tokens
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*types.TokenResponse, error)
	CurrentUser(ctx context.Context, username string) (*models.User, error)
}

type TagStore interface {
	Create(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error)
	List(ctx context.Context, page types.Page) ([]models.Tag, error)
	Get(ctx context.Context, id uint) (*models.Tag, error)
	Update(ctx context.Context, id uint, req *types.UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, id uint) error
}

type CuisineStore interface {
	Create(ctx context.Context, req *types.CreateCuisineRequest) (*models.Cuisine, error)
	List(ctx context.Context, page types.Page) ([]models.Cuisine, error)
	Get(ctx context.Context, id uint) (*models.Cuisine, error)
	Update(ctx context.Context, id uint, req *types.UpdateCuisineRequest) (*models.Cuisine, error)
	Delete(ctx context.Context, id uint) error
}

type RecipeStore interface {
	Create(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error)
	List(ctx context.Context, page types.Page, tagID *uint) ([]models.Recipe, error)
	Get(ctx context.Context, id uint) (*models.Recipe, error)
	Update(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type ReviewStore interface {
	Create(ctx context.Context, req *types.CreateReviewRequest) (*models.Review, error)
	List(ctx context.Context, page types.Page, cuisineID *uint) ([]models.Review, error)
	Get(ctx context.Context, id uint) (*models.Review, error)
	Update(ctx context.Context, id uint, req *types.UpdateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
}

// ImageUploader stores the JPEG shown for a named entry
type ImageUploader interface {
	UploadJPEG(ctx context.Context, name string, data []byte) (string, error)
}
