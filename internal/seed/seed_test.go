package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/dippingsauce/backend/config"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/repository"
	"github.com/pageza/dippingsauce/backend/internal/service"
	"github.com/pageza/dippingsauce/backend/internal/testhelpers"
)

func TestRunIsIdempotent(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	tokens, err := service.NewTokenService(&config.Config{SecretKey: "s", Algorithm: "HS256"})
	require.NoError(t, err)
	auth := service.NewAuthService(repository.NewUserRepository(db), tokens, bcrypt.MinCost)
	seeder := New(db, auth, zap.NewNop())
	ctx := context.Background()

	opts := Options{Username: "admin", Password: "changeme", Recipes: 6, Reviews: 4, Seed: 42}

	res, err := seeder.Run(ctx, opts)
	require.NoError(t, err)
	assert.True(t, res.UserCreated)
	assert.Equal(t, len(defaultTags), res.Tags)
	assert.Equal(t, len(defaultCuisines), res.Cuisines)
	assert.Equal(t, 6, res.Recipes)
	assert.Equal(t, 4, res.Reviews)

	res, err = seeder.Run(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, res)

	var recipes, reviews int64
	require.NoError(t, db.Model(&models.Recipe{}).Count(&recipes).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	assert.EqualValues(t, 6, recipes)
	assert.EqualValues(t, 4, reviews)

	_, err = auth.Authenticate(ctx, "admin", "changeme")
	assert.NoError(t, err)
}

func TestRunWithoutUser(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	tokens, err := service.NewTokenService(&config.Config{SecretKey: "s", Algorithm: "HS256"})
	require.NoError(t, err)
	seeder := New(db, service.NewAuthService(repository.NewUserRepository(db), tokens, bcrypt.MinCost), zap.NewNop())

	res, err := seeder.Run(context.Background(), Options{Reviews: 3})
	require.NoError(t, err)
	assert.False(t, res.UserCreated)
	assert.Zero(t, res.Recipes)
	assert.Equal(t, 3, res.Reviews)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
