// Package testutils provides shared mocks for application-layer tests
package testutils

import (
	"context"
	"time"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDishRepository is a mock implementation of outbound.DishRepository
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *dish.Dish) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDishRepository) FindByID(ctx context.Context, id uuid.UUID) (*dish.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByNameKey(ctx context.Context, nameKey string) (*dish.Dish, error) {
	args := m.Called(ctx, nameKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dish.Dish), args.Error(1)
}

func (m *MockDishRepository) FindAll(ctx context.Context) ([]*dish.Dish, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dish.Dish), args.Error(1)
}

// MockRecipeRepository is a mock implementation of outbound.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

// MockProfileRepository is a mock implementation of outbound.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByReferralCode(ctx context.Context, code string) (*profile.Profile, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

// MockEateryRepository is a mock implementation of outbound.EateryRepository
type MockEateryRepository struct {
	mock.Mock
}

func (m *MockEateryRepository) FindAll(ctx context.Context) ([]*eatery.HealthyEatery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*eatery.HealthyEatery), args.Error(1)
}

// MockIngredientRepository is a mock implementation of outbound.IngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) FindAll(ctx context.Context) ([]outbound.ReferenceIngredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.ReferenceIngredient), args.Error(1)
}

// MockCacheRepository is a mock implementation of outbound.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockCompletionService is a mock implementation of outbound.CompletionService
type MockCompletionService struct {
	mock.Mock
}

func (m *MockCompletionService) Model() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCompletionService) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) GenerateRecipeForDish(ctx context.Context, dishName string, hints outbound.ProfileHints) (string, error) {
	args := m.Called(ctx, dishName, hints)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) GenerateRecipeFromIngredients(ctx context.Context, ingredients []string, hints outbound.ProfileHints) (string, error) {
	args := m.Called(ctx, ingredients, hints)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) EstimateCalories(ctx context.Context, recipeText string) (float64, error) {
	args := m.Called(ctx, recipeText)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCompletionService) ExtractDishName(ctx context.Context, recipeText string) (string, error) {
	args := m.Called(ctx, recipeText)
	return args.String(0), args.Error(1)
}

func (m *MockCompletionService) DetectIngredients(ctx context.Context, imageURL, imageBase64 string) (string, error) {
	args := m.Called(ctx, imageURL, imageBase64)
	return args.String(0), args.Error(1)
}
