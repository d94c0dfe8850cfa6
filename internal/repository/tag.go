package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

const tagResource = "Tag"

// TagRepository handles tag persistence
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository instance
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create creates a new tag
func (r *TagRepository) Create(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error) {
	tag := &models.Tag{Name: req.Name}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, translate(err, tagResource)
	}
	return tag, nil
}

// List returns a page of tags in id order
func (r *TagRepository) List(ctx context.Context, page types.Page) ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.db.WithContext(ctx).Scopes(paginate(page)).Order("id").Find(&tags).Error; err != nil {
		return nil, translate(err, tagResource)
	}
	return tags, nil
}

// Get retrieves a tag by ID
func (r *TagRepository) Get(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err, tagResource)
	}
	return &tag, nil
}

// Update applies the fields present in req
func (r *TagRepository) Update(ctx context.Context, id uint, req *types.UpdateTagRequest) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}
		if changes := req.Changes(); len(changes) > 0 {
			if err := tx.Model(&tag).Updates(changes).Error; err != nil {
				return err
			}
		}
		return tx.First(&tag, id).Error
	})
	if err != nil {
		return nil, translate(err, tagResource)
	}
	return &tag, nil
}

// Delete removes a tag. Tags still used by a recipe are kept and a
// Conflict is returned.
func (r *TagRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Tag{}, id, tagResource); err != nil {
			return err
		}
		inUse, err := referenced(tx, &models.Recipe{}, "tag_id", id)
		if err != nil {
			return err
		}
		if inUse {
			return apperr.Conflict("Tag is still used by recipes")
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
	return translate(err, tagResource)
}
