// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/google/uuid"
)

// ErrNotFound is the sentinel repositories return when a lookup misses.
var ErrNotFound = errors.New("record not found")

// DishRepository defines the interface for dish persistence.
// Dishes are keyed by their normalized name for dedup lookups.
type DishRepository interface {
	Create(ctx context.Context, d *dish.Dish) error
	Update(ctx context.Context, d *dish.Dish) error
	FindByID(ctx context.Context, id uuid.UUID) (*dish.Dish, error)
	FindByNameKey(ctx context.Context, nameKey string) (*dish.Dish, error)
	FindAll(ctx context.Context) ([]*dish.Dish, error)
}

// RecipeRepository defines the interface for catalog recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
}

// ProfileRepository defines the interface for health profile persistence
type ProfileRepository interface {
	Create(ctx context.Context, p *profile.Profile) error
	Update(ctx context.Context, p *profile.Profile) error
	FindByUserID(ctx context.Context, userID string) (*profile.Profile, error)
	FindByReferralCode(ctx context.Context, code string) (*profile.Profile, error)
}

// EateryRepository defines the interface for the healthy-eatery directory
type EateryRepository interface {
	FindAll(ctx context.Context) ([]*eatery.HealthyEatery, error)
}

// ReferenceIngredient is one row of the packaged-food reference list
type ReferenceIngredient struct {
	ID                  uuid.UUID `json:"id"`
	BrandAndProductName string    `json:"brand_and_product_name"`
	PackageSize         string    `json:"package_size"`
}

// IngredientRepository defines the interface for the ingredient reference list
type IngredientRepository interface {
	FindAll(ctx context.Context) ([]ReferenceIngredient, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
