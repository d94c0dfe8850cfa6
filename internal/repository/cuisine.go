package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

const cuisineResource = "Cuisine"

// CuisineRepository handles cuisine persistence
type CuisineRepository struct {
	db *gorm.DB
}

// NewCuisineRepository creates a new CuisineRepository instance
func NewCuisineRepository(db *gorm.DB) *CuisineRepository {
	return &CuisineRepository{db: db}
}

func (r *CuisineRepository) Create(ctx context.Context, req *types.CreateCuisineRequest) (*models.Cuisine, error) {
	cuisine := &models.Cuisine{Name: req.Name}
	if err := r.db.WithContext(ctx).Create(cuisine).Error; err != nil {
		return nil, translate(err, cuisineResource)
	}
	return cuisine, nil
}

// List returns a page of cuisines sorted by name
func (r *CuisineRepository) List(ctx context.Context, page types.Page) ([]models.Cuisine, error) {
	cuisines := []models.Cuisine{}
	err := r.db.WithContext(ctx).
		Scopes(paginate(page)).
		Order("name ASC").
		Order("id ASC").
		Find(&cuisines).Error
	if err != nil {
		return nil, translate(err, cuisineResource)
	}
	return cuisines, nil
}

func (r *CuisineRepository) Get(ctx context.Context, id uint) (*models.Cuisine, error) {
	var cuisine models.Cuisine
	if err := r.db.WithContext(ctx).First(&cuisine, id).Error; err != nil {
		return nil, translate(err, cuisineResource)
	}
	return &cuisine, nil
}

func (r *CuisineRepository) Update(ctx context.Context, id uint, req *types.UpdateCuisineRequest) (*models.Cuisine, error) {
	var cuisine models.Cuisine
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cuisine, id).Error; err != nil {
			return err
		}
		if changes := req.Changes(); len(changes) > 0 {
			if err := tx.Model(&cuisine).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&cuisine, id).Error
	})
	if err != nil {
		return nil, translate(err, cuisineResource)
	}
	return &cuisine, nil
}

// Delete removes a cuisine unless a review still points at it
func (r *CuisineRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Cuisine{}, id, cuisineResource); err != nil {
			return err
		}
		inUse, err := referenced(tx, &models.Review{}, "cuisine_id", id)
		if err != nil {
			return err
		}
		if inUse {
			return apperr.Conflict("Cuisine is still used by reviews")
		}
		return tx.Delete(&models.Cuisine{}, id).Error
	})
	return translate(err, cuisineResource)
}
