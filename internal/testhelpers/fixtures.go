package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/models"
)

// FakeUsername returns a random username made only of characters the
// signup validator accepts
func FakeUsername() string {
	return fmt.Sprintf("%s_%d", strings.ToLower(gofakeit.LetterN(10)), gofakeit.Number(1000, 9999))
}

// FakePassword returns a random password without spaces
func FakePassword() string {
	return gofakeit.Password(true, true, true, true, false, 16)
}

// CreateTag inserts a tag. An empty name is replaced by a random one.
func CreateTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	if name == "" {
		name = gofakeit.Adjective()
	}
	tag := &models.Tag{Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create tag: %v", err)
	}
	return tag
}

// CreateCuisine inserts a cuisine. An empty name is replaced by a random one.
func CreateCuisine(t *testing.T, db *gorm.DB, name string) *models.Cuisine {
	t.Helper()
	if name == "" {
		name = gofakeit.Country()
	}
	cuisine := &models.Cuisine{Name: name}
	if err := db.Create(cuisine).Error; err != nil {
		t.Fatalf("failed to create cuisine: %v", err)
	}
	return cuisine
}

// CreateRecipe inserts a recipe with random content under tagID
func CreateRecipe(t *testing.T, db *gorm.DB, tagID uint) *models.Recipe {
	t.Helper()
	servings := gofakeit.Number(1, 8)
	calories := gofakeit.Number(100, 1200)
	protein := gofakeit.Number(0, 80)
	ingredients := "- " + gofakeit.Vegetable() + "\n- " + gofakeit.Fruit()
	instructions := gofakeit.Sentence(12)

	recipe := &models.Recipe{
		Name:         gofakeit.Dinner(),
		Servings:     &servings,
		Calories:     &calories,
		Protein:      &protein,
		Ingredients:  &ingredients,
		Instructions: &instructions,
		TagID:        &tagID,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return recipe
}

// CreateReview inserts review after filling an empty name and address
func CreateReview(t *testing.T, db *gorm.DB, review models.Review) *models.Review {
	t.Helper()
	if review.Name == "" {
		review.Name = gofakeit.Company()
	}
	if review.Address == nil {
		address := gofakeit.Street()
		review.Address = &address
	}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	return &review
}
