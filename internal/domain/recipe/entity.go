// Package recipe contains the catalog side of the domain: curated recipes
// with structured ingredients, steps and free-text nutrition facts. These
// records back browsing, filtering and the health-profile recommendation.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe represents a curated catalog recipe.
type Recipe struct {
	id                 uuid.UUID
	title              string
	cuisine            string
	ingredients        []string
	steps              []string
	healthyCookingTips []string
	nutrition          Nutrition
	createdAt          time.Time
	updatedAt          time.Time
}

// NewRecipe creates a catalog recipe with validation
func NewRecipe(title, cuisine string, ingredients, steps, tips []string, nutrition Nutrition) (*Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	now := time.Now()
	return &Recipe{
		id:                 uuid.New(),
		title:              strings.TrimSpace(title),
		cuisine:            cuisine,
		ingredients:        ingredients,
		steps:              steps,
		healthyCookingTips: tips,
		nutrition:          nutrition,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// Reconstruct rebuilds a recipe from persistence.
func Reconstruct(
	id uuid.UUID,
	title, cuisine string,
	ingredients, steps, tips []string,
	nutrition Nutrition,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:                 id,
		title:              title,
		cuisine:            cuisine,
		ingredients:        ingredients,
		steps:              steps,
		healthyCookingTips: tips,
		nutrition:          nutrition,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ID returns the recipe identifier
func (r *Recipe) ID() uuid.UUID { return r.id }

// Title returns the recipe title
func (r *Recipe) Title() string { return r.title }

// Cuisine returns the cuisine label
func (r *Recipe) Cuisine() string { return r.cuisine }

// Ingredients returns the ingredient lines
func (r *Recipe) Ingredients() []string { return r.ingredients }

// Steps returns the preparation steps
func (r *Recipe) Steps() []string { return r.steps }

// HealthyCookingTips returns the healthy-cooking tips
func (r *Recipe) HealthyCookingTips() []string { return r.healthyCookingTips }

// Nutrition returns the nutrition facts
func (r *Recipe) Nutrition() Nutrition { return r.nutrition }

// CreatedAt returns the creation timestamp
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last modification timestamp
func (r *Recipe) UpdatedAt() time.Time { return r.updatedAt }

// MatchesCuisine reports whether the recipe belongs to the given cuisine,
// case-insensitively. An empty filter matches everything.
func (r *Recipe) MatchesCuisine(cuisine string) bool {
	if cuisine == "" {
		return true
	}
	return strings.EqualFold(r.cuisine, cuisine)
}

// ContainsIngredient reports whether any ingredient line contains the given
// term as a case-insensitive substring. An empty term matches everything.
func (r *Recipe) ContainsIngredient(term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, line := range r.ingredients {
		if strings.Contains(strings.ToLower(line), needle) {
			return true
		}
	}
	return false
}
