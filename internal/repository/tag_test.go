package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/repository"
	"github.com/pageza/dippingsauce/backend/internal/testhelpers"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func uintPtr(u uint) *uint { return &u }
func boolPtr(b bool) *bool { return &b }

func TestTagRepositoryCRUD(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	repo := repository.NewTagRepository(db)
	ctx := context.Background()

	tag, err := repo.Create(ctx, &types.CreateTagRequest{Name: "dinner"})
	require.NoError(t, err)
	assert.NotZero(t, tag.ID)
	assert.Equal(t, "dinner", tag.Name)

	got, err := repo.Get(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, *tag, *got)

	updated, err := repo.Update(ctx, tag.ID, &types.UpdateTagRequest{Name: types.Some("supper")})
	require.NoError(t, err)
	assert.Equal(t, "supper", updated.Name)

	unchanged, err := repo.Update(ctx, tag.ID, &types.UpdateTagRequest{})
	require.NoError(t, err)
	assert.Equal(t, "supper", unchanged.Name)

	require.NoError(t, repo.Delete(ctx, tag.ID))
	_, err = repo.Get(ctx, tag.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestTagRepositoryNotFound(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	repo := repository.NewTagRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx, 999)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "Tag not found", apperr.From(err).Message)

	_, err = repo.Update(ctx, 999, &types.UpdateTagRequest{Name: types.Some("x")})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	err = repo.Delete(ctx, 999)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestTagRepositoryDeleteInUse(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	repo := repository.NewTagRepository(db)
	ctx := context.Background()

	tag := testhelpers.CreateTag(t, db, "lunch")
	testhelpers.CreateRecipe(t, db, tag.ID)

	err := repo.Delete(ctx, tag.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	_, err = repo.Get(ctx, tag.ID)
	assert.NoError(t, err)
}

func TestTagRepositoryPagination(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	repo := repository.NewTagRepository(db)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		testhelpers.CreateTag(t, db, fmt.Sprintf("tag-%d", i))
	}

	first, err := repo.List(ctx, types.Page{Offset: 0, Limit: 3})
	require.NoError(t, err)
	second, err := repo.List(ctx, types.Page{Offset: 3, Limit: 3})
	require.NoError(t, err)
	all, err := repo.List(ctx, types.Page{Offset: 0, Limit: 6})
	require.NoError(t, err)

	assert.Len(t, first, 3)
	assert.Len(t, second, 3)
	assert.Equal(t, all, append(first, second...))

	past, err := repo.List(ctx, types.Page{Offset: 10, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestTagRepositoryLimitIsClamped(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	repo := repository.NewTagRepository(db)

	tags := make([]models.Tag, types.MaxPageLimit+5)
	for i := range tags {
		tags[i].Name = fmt.Sprintf("tag-%d", i)
	}
	require.NoError(t, db.CreateInBatches(&tags, 50).Error)

	page, err := repo.List(context.Background(), types.Page{Limit: 500})
	require.NoError(t, err)
	assert.Len(t, page, types.MaxPageLimit)
}
