// Package mocks holds testify mocks of the stores the HTTP handlers depend
// on, for exercising failure paths a real database will not produce.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// MockTagStore is a mock implementation of api.TagStore
type MockTagStore struct {
	mock.Mock
}

func (m *MockTagStore) Create(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagStore) List(ctx context.Context, page types.Page) ([]models.Tag, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagStore) Get(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagStore) Update(ctx context.Context, id uint, req *types.UpdateTagRequest) (*models.Tag, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeStore is a mock implementation of api.RecipeStore
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) Create(ctx context.Context, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) List(ctx context.Context, page types.Page, tagID *uint) ([]models.Recipe, error) {
	args := m.Called(ctx, page, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Update(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImageUploader is a mock implementation of api.ImageUploader
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) UploadJPEG(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}
