// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"
)

// DishSource labels where the returned dish record came from
type DishSource string

const (
	// DishSourceCache means a stored record satisfied the request with no generation
	DishSourceCache DishSource = "cache"
	// DishSourceGenerated means a new record was created from a fresh generation
	DishSourceGenerated DishSource = "generated"
	// DishSourceReplaced means a lower-calorie generation overwrote the stored recipe
	DishSourceReplaced DishSource = "replaced"
	// DishSourceStored means a generation was discarded in favor of the stored record
	DishSourceStored DishSource = "stored"
)

// RecipeService defines the recipe acquisition and catalog use cases
type RecipeService interface {
	// Acquisition - write-through cached recipe generation
	FindOrGenerate(ctx context.Context, cmd FindDishCommand) (*DishDTO, error)
	GenerateFromIngredients(ctx context.Context, cmd IngredientsCommand) (*DishDTO, error)
	GenerateFromImage(ctx context.Context, cmd ImageCommand) (*DishDTO, error)

	// Rating aggregate
	SubmitRating(ctx context.Context, cmd RateDishCommand) (*DishDTO, error)

	// Catalog queries
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]RecipeDTO, error)
	RecommendRecipe(ctx context.Context, userID string) (*RecipeDTO, error)
}

// Command objects for operations

// FindDishCommand requests a recipe by dish name
type FindDishCommand struct {
	DishName string `validate:"required"`
	UserID   string
}

// IngredientsCommand requests a recipe built from available ingredients
type IngredientsCommand struct {
	Ingredients []string `validate:"required,min=1,dive,required"`
	UserID      string
}

// ImageCommand requests a recipe built from a food photo
type ImageCommand struct {
	ImageURL    string
	ImageBase64 string
	UserID      string
}

// RateDishCommand folds one rating into a dish's aggregate
type RateDishCommand struct {
	DishName string  `validate:"required"`
	Rating   float64 `validate:"required,gte=1,lte=5"`
}

// RecipeFilter narrows the catalog listing
type RecipeFilter struct {
	Cuisine    string
	Ingredient string
}

// DTOs

// DishDTO is the API-facing view of a dish record
type DishDTO struct {
	ID          uuid.UUID  `json:"id"`
	DishName    string     `json:"dish_name"`
	Recipe      string     `json:"recipe"`
	Rating      float64    `json:"rating"`
	RatingCount int        `json:"rating_count"`
	Calories    *float64   `json:"calories"`
	Source      DishSource `json:"source"`
}

// NutritionDTO carries per-serving nutrition facts as entered
type NutritionDTO struct {
	Servings     string `json:"servings"`
	Energy       string `json:"energy"`
	Carbohydrate string `json:"carbohydrate"`
	Protein      string `json:"protein"`
	Fat          string `json:"fat"`
	SaturatedFat string `json:"saturated_fat"`
	Cholesterol  string `json:"cholesterol"`
	Fibre        string `json:"fibre"`
	Sodium       string `json:"sodium"`
}

// RecipeDTO is the API-facing view of a catalog recipe
type RecipeDTO struct {
	ID                 uuid.UUID    `json:"id"`
	Title              string       `json:"title"`
	Cuisine            string       `json:"cuisine"`
	Ingredients        []string     `json:"ingredients"`
	Steps              []string     `json:"steps"`
	HealthyCookingTips []string     `json:"healthy_cooking_tips"`
	Nutrition          NutritionDTO `json:"nutrition"`
}
