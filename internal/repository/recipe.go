package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

const recipeResource = "Recipe"

// RecipeRepository handles recipe persistence. Returned recipes carry
// their Tag.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository instance
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe under an existing tag
func (r *RecipeRepository) Create(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Name:         req.Name,
		Servings:     req.Servings,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		TagID:        req.TagID,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.TagID != nil {
			if err := mustExist(tx, &models.Tag{}, *req.TagID, tagResource); err != nil {
				return err
			}
		}
		if err := tx.Omit("Tag").Create(recipe).Error; err != nil {
			return err
		}
		return tx.Preload("Tag").First(recipe, recipe.ID).Error
	})
	if err != nil {
		return nil, translate(err, recipeResource)
	}
	return recipe, nil
}

// List returns a page of recipes in id order, optionally limited to one tag
func (r *RecipeRepository) List(ctx context.Context, page types.Page, tagID *uint) ([]models.Recipe, error) {
	query := r.db.WithContext(ctx).Preload("Tag")
	if tagID != nil {
		query = query.Where("tag_id = ?", *tagID)
	}

	recipes := []models.Recipe{}
	if err := query.Scopes(paginate(page)).Order("id").Find(&recipes).Error; err != nil {
		return nil, translate(err, recipeResource)
	}
	return recipes, nil
}

// Get retrieves a recipe by ID
func (r *RecipeRepository) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).Preload("Tag").First(&recipe, id).Error; err != nil {
		return nil, translate(err, recipeResource)
	}
	return &recipe, nil
}

// Update applies the fields present in req. A new tag_id must reference
// an existing tag; a null tag_id detaches the recipe.
func (r *RecipeRepository) Update(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&recipe, id).Error; err != nil {
			return err
		}
		if req.TagID.Value != nil {
			if err := mustExist(tx, &models.Tag{}, *req.TagID.Value, tagResource); err != nil {
				return err
			}
		}
		if changes := req.Changes(); len(changes) > 0 {
			if err := tx.Model(&models.Recipe{ID: id}).Updates(changes).Error; err != nil {
				return err
			}
		}
		recipe = models.Recipe{}
		return tx.Preload("Tag").First(&recipe, id).Error
	})
	if err != nil {
		return nil, translate(err, recipeResource)
	}
	return &recipe, nil
}

// Delete deletes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Recipe{}, id, recipeResource); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
	return translate(err, recipeResource)
}
