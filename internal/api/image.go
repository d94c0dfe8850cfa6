package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/render"
)

// MaxImageSize bounds an uploaded image
const MaxImageSize = 5 << 20

// ImageHandler stores the pictures shown on recipe and review cards
type ImageHandler struct {
	images   ImageUploader
	recipes  RecipeStore
	reviews  ReviewStore
	renderer *render.Renderer
}

// NewImageHandler creates a new image handler
func NewImageHandler(images ImageUploader, recipes RecipeStore, reviews ReviewStore, renderer *render.Renderer) *ImageHandler {
	return &ImageHandler{
		images:   images,
		recipes:  recipes,
		reviews:  reviews,
		renderer: renderer,
	}
}

// ImageResponse describes a stored image
type ImageResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

func (h *ImageHandler) RegisterRoutes(router gin.IRouter, requireAuth gin.HandlerFunc) {
	router.POST("/recipes/:id/image", requireAuth, h.UploadRecipeImage)
	router.POST("/reviews/:id/image", requireAuth, h.UploadReviewImage)
}

func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	h.upload(c, func(ctx context.Context, id uint) (string, error) {
		recipe, err := h.recipes.Get(ctx, id)
		if err != nil {
			return "", err
		}
		return recipe.Name, nil
	})
}

func (h *ImageHandler) UploadReviewImage(c *gin.Context) {
	h.upload(c, func(ctx context.Context, id uint) (string, error) {
		review, err := h.reviews.Get(ctx, id)
		if err != nil {
			return "", err
		}
		return review.Name, nil
	})
}

// upload reads the multipart "image" field and stores it under the name of
// the entry identified by the path id
func (h *ImageHandler) upload(c *gin.Context, lookup func(ctx context.Context, id uint) (string, error)) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	name, err := lookup(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	data, err := readImage(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	key, err := h.images.UploadJPEG(c.Request.Context(), name, data)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ImageResponse{Key: key, URL: h.renderer.ImageURL(name)})
}

func readImage(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxImageSize+1<<20)

	header, err := c.FormFile("image")
	if err != nil {
		return nil, apperr.Validation("image file is required")
	}
	if header.Size > MaxImageSize {
		return nil, apperr.Validation("image must be at most 5MB")
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(data) > MaxImageSize {
		return nil, apperr.Validation("image must be at most 5MB")
	}
	if http.DetectContentType(data) != "image/jpeg" {
		return nil, apperr.Validation("image must be a JPEG")
	}
	return data, nil
}
