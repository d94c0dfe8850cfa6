package testhelpers

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dippingsauce/backend/internal/models"
)

func TestSetupSQLiteDB(t *testing.T) {
	db := SetupSQLiteDB(t)

	tag := CreateTag(t, db, "")
	recipe := CreateRecipe(t, db, tag.ID)

	var loaded models.Recipe
	require.NoError(t, db.Preload("Tag").First(&loaded, recipe.ID).Error)
	require.NotNil(t, loaded.Tag)
	assert.Equal(t, tag.Name, loaded.Tag.Name)
}

func TestFakeUsername(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+_[0-9]{4}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, pattern, FakeUsername())
	}
}

func TestSetupPostgresDB(t *testing.T) {
	db := SetupPostgresDB(t)

	cuisine := CreateCuisine(t, db, "thai")
	review := CreateReview(t, db, models.Review{CuisineID: &cuisine.ID})
	assert.NotZero(t, review.ID)
}
