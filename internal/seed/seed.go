// Package seed fills an empty catalog with sample data for local
// development.
package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/models"
	"github.com/pageza/dippingsauce/backend/internal/repository"
	"github.com/pageza/dippingsauce/backend/internal/service"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

var (
	defaultTags     = []string{"breakfast", "lunch", "dinner", "dessert", "snack"}
	defaultCuisines = []string{"american", "chinese", "french", "indian", "italian", "japanese", "mexican", "thai"}
)

// Options controls how much sample data is written
type Options struct {
	Username string
	Password string
	Recipes  int
	Reviews  int
	// Seed makes the generated content reproducible when non-zero
	Seed int64
}

// Result counts what Run created
type Result struct {
	UserCreated bool
	Tags        int
	Cuisines    int
	Recipes     int
	Reviews     int
}

// Seeder writes sample data through the same repositories the API uses
type Seeder struct {
	auth     *service.AuthService
	tags     *repository.TagRepository
	cuisines *repository.CuisineRepository
	recipes  *repository.RecipeRepository
	reviews  *repository.ReviewRepository
	log      *zap.Logger
}

func New(db *gorm.DB, auth *service.AuthService, log *zap.Logger) *Seeder {
	return &Seeder{
		auth:     auth,
		tags:     repository.NewTagRepository(db),
		cuisines: repository.NewCuisineRepository(db),
		recipes:  repository.NewRecipeRepository(db),
		reviews:  repository.NewReviewRepository(db),
		log:      log,
	}
}

// Run creates the account when it does not exist yet, and tags, cuisines,
// recipes and reviews only when their tables are empty, so it can be run
// repeatedly.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	faker := gofakeit.New(opts.Seed)
	res := &Result{}

	if opts.Username != "" {
		_, err := s.auth.Register(ctx, opts.Username, opts.Password)
		switch {
		case err == nil:
			res.UserCreated = true
		case apperr.Is(err, apperr.CodeConflict):
			s.log.Info("user already exists, skipping", zap.String("username", opts.Username))
		default:
			return nil, fmt.Errorf("create user: %w", err)
		}
	}

	tags, err := s.ensureTags(ctx, res)
	if err != nil {
		return nil, err
	}
	cuisines, err := s.ensureCuisines(ctx, res)
	if err != nil {
		return nil, err
	}

	existingRecipes, err := s.recipes.List(ctx, types.Page{Limit: 1}, nil)
	if err != nil {
		return nil, err
	}
	if len(existingRecipes) == 0 {
		for i := 0; i < opts.Recipes; i++ {
			if _, err := s.recipes.Create(ctx, fakeRecipe(faker, tags)); err != nil {
				return nil, fmt.Errorf("create recipe: %w", err)
			}
			res.Recipes++
		}
	}

	existingReviews, err := s.reviews.List(ctx, types.Page{Limit: 1}, nil)
	if err != nil {
		return nil, err
	}
	if len(existingReviews) == 0 {
		for i := 0; i < opts.Reviews; i++ {
			if _, err := s.reviews.Create(ctx, fakeReview(faker, cuisines)); err != nil {
				return nil, fmt.Errorf("create review: %w", err)
			}
			res.Reviews++
		}
	}

	s.log.Info("seed complete",
		zap.Bool("user_created", res.UserCreated),
		zap.Int("tags", res.Tags),
		zap.Int("cuisines", res.Cuisines),
		zap.Int("recipes", res.Recipes),
		zap.Int("reviews", res.Reviews),
	)
	return res, nil
}

func (s *Seeder) ensureTags(ctx context.Context, res *Result) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx, types.Page{Limit: types.MaxPageLimit})
	if err != nil || len(tags) > 0 {
		return tags, err
	}
	for _, name := range defaultTags {
		tag, err := s.tags.Create(ctx, &types.CreateTagRequest{Name: name})
		if err != nil {
			return nil, fmt.Errorf("create tag %q: %w", name, err)
		}
		tags = append(tags, *tag)
		res.Tags++
	}
	return tags, nil
}

func (s *Seeder) ensureCuisines(ctx context.Context, res *Result) ([]models.Cuisine, error) {
	cuisines, err := s.cuisines.List(ctx, types.Page{Limit: types.MaxPageLimit})
	if err != nil || len(cuisines) > 0 {
		return cuisines, err
	}
	for _, name := range defaultCuisines {
		cuisine, err := s.cuisines.Create(ctx, &types.CreateCuisineRequest{Name: name})
		if err != nil {
			return nil, fmt.Errorf("create cuisine %q: %w", name, err)
		}
		cuisines = append(cuisines, *cuisine)
		res.Cuisines++
	}
	return cuisines, nil
}

func fakeRecipe(faker *gofakeit.Faker, tags []models.Tag) *types.CreateRecipeRequest {
	servings := faker.Number(1, 8)
	calories := faker.Number(150, 1200)
	protein := faker.Number(0, 80)
	ingredients := fmt.Sprintf("- %s\n- %s\n- %s", faker.Vegetable(), faker.Fruit(), faker.Noun())
	instructions := fmt.Sprintf("1. %s\n2. %s", faker.Sentence(8), faker.Sentence(10))
	tagID := tags[faker.Number(0, len(tags)-1)].ID

	return &types.CreateRecipeRequest{
		Name:         faker.Dinner(),
		Servings:     &servings,
		Calories:     &calories,
		Protein:      &protein,
		Ingredients:  &ingredients,
		Instructions: &instructions,
		TagID:        &tagID,
	}
}

func fakeReview(faker *gofakeit.Faker, cuisines []models.Cuisine) *types.CreateReviewRequest {
	address := fmt.Sprintf("%s, %s", faker.Street(), faker.City())
	visited := faker.Bool()
	notes := faker.Sentence(14)
	cuisineID := cuisines[faker.Number(0, len(cuisines)-1)].ID

	req := &types.CreateReviewRequest{
		Name:      faker.Company(),
		Address:   &address,
		Visited:   &visited,
		Notes:     &notes,
		CuisineID: &cuisineID,
	}
	if visited {
		rating := faker.Number(1, 5)
		req.Rating = &rating
	}
	return req
}
