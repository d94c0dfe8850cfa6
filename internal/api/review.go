package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/render"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// ReviewHandler serves restaurant reviews under /reviews
type ReviewHandler struct {
	reviews  ReviewStore
	renderer *render.Renderer
}

func NewReviewHandler(reviews ReviewStore, renderer *render.Renderer) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, renderer: renderer}
}

func (h *ReviewHandler) RegisterRoutes(reviews *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	reviews.POST("/create/", requireAuth, h.CreateReview)
	reviews.GET("/all/", h.ListReviews)
	reviews.GET("/all/html", h.ListReviewsHTML)
	reviews.GET("/:id", h.GetReview)
	reviews.PATCH("/:id", requireAuth, h.UpdateReview)
	reviews.DELETE("/:id", requireAuth, h.DeleteReview)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req types.CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// list reads the page and ?cuisine= filter shared by the JSON and HTML lists
func (h *ReviewHandler) list(c *gin.Context) ([]models.Review, error) {
	page, err := bindPage(c)
	if err != nil {
		return nil, err
	}
	cuisineID, err := parseFilter(c, "cuisine")
	if err != nil {
		return nil, err
	}
	return h.reviews.List(c.Request.Context(), page, cuisineID)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.list(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) ListReviewsHTML(c *gin.Context) {
	reviews, err := h.list(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	fragment, err := h.renderer.ReviewCards(reviews)
	if err != nil {
		_ = c.Error(err)
		return
	}
	writeHTML(c, http.StatusOK, fragment)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviews.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req types.UpdateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	review, err := h.reviews.Update(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, okResponse)
}
