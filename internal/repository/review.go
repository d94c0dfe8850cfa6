package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

const reviewResource = "Review"

// reviewOrder lists visited places first, then by rating with unrated
// rows last, then alphabetically. The CASE keeps NULL ratings at the end
// on both postgres and sqlite.
const reviewOrder = "visited DESC, CASE WHEN rating IS NULL THEN 1 ELSE 0 END, rating DESC, name ASC, id ASC"

// ReviewRepository handles review persistence. Returned reviews carry
// their Cuisine.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository instance
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review for an existing cuisine
func (r *ReviewRepository) Create(ctx context.Context, req *types.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		Name:      req.Name,
		Address:   req.Address,
		Rating:    req.Rating,
		Notes:     req.Notes,
		CuisineID: req.CuisineID,
	}
	if req.Visited != nil {
		review.Visited = *req.Visited
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.CuisineID != nil {
			if err := mustExist(tx, &models.Cuisine{}, *req.CuisineID, cuisineResource); err != nil {
				return err
			}
		}
		if err := tx.Omit("Cuisine").Create(review).Error; err != nil {
			return err
		}
		return tx.Preload("Cuisine").First(review, review.ID).Error
	})
	if err != nil {
		return nil, translate(err, reviewResource)
	}
	return review, nil
}

// List returns a page of reviews in listing order, optionally limited to
// one cuisine
func (r *ReviewRepository) List(ctx context.Context, page types.Page, cuisineID *uint) ([]models.Review, error) {
	query := r.db.WithContext(ctx).Preload("Cuisine")
	if cuisineID != nil {
		query = query.Where("cuisine_id = ?", *cuisineID)
	}

	reviews := []models.Review{}
	if err := query.Order(reviewOrder).Scopes(paginate(page)).Find(&reviews).Error; err != nil {
		return nil, translate(err, reviewResource)
	}
	return reviews, nil
}

// Get retrieves a review by ID
func (r *ReviewRepository) Get(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).Preload("Cuisine").First(&review, id).Error; err != nil {
		return nil, translate(err, reviewResource)
	}
	return &review, nil
}

// Update applies the fields present in req. A new cuisine_id must
// reference an existing cuisine; a null cuisine_id detaches the review.
func (r *ReviewRepository) Update(ctx context.Context, id uint, req *types.UpdateReviewRequest) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if req.CuisineID.Value != nil {
			if err := mustExist(tx, &models.Cuisine{}, *req.CuisineID.Value, cuisineResource); err != nil {
				return err
			}
		}
		if changes := req.Changes(); len(changes) > 0 {
			if err := tx.Model(&models.Review{ID: id}).Updates(changes).Error; err != nil {
				return err
			}
		}
		review = models.Review{}
		return tx.Preload("Cuisine").First(&review, id).Error
	})
	if err != nil {
		return nil, translate(err, reviewResource)
	}
	return &review, nil
}

// Delete deletes a review
func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Review{}, id, reviewResource); err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
	return translate(err, reviewResource)
}
