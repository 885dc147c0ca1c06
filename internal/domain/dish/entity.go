// Package dish contains the core domain logic for generated dishes.
// A dish is the cached unit of the recipe acquisition workflow: one row
// per distinct dish name, carrying the best known recipe text, its
// estimated calories and the community rating aggregate.
package dish

import (
	"strings"
	"time"

	"github.com/dishcovery/v1/internal/domain/shared"
	"github.com/google/uuid"
)

// Dish represents a named recipe record with its rating aggregate.
type Dish struct {
	id          uuid.UUID
	name        string
	nameKey     string
	recipe      string
	rating      float64
	ratingCount int
	calories    *float64
	aiModel     string
	createdAt   time.Time
	updatedAt   time.Time

	events []shared.DomainEvent
}

// NormalizeName derives the lookup key for a dish name: lower-cased with
// runs of whitespace collapsed to single spaces. Two names that normalize
// to the same key are the same dish.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NewDish creates a dish record for a freshly generated recipe.
// The rating aggregate starts empty (mean 0, count 0).
func NewDish(name, recipe string, calories *float64, aiModel string) (*Dish, error) {
	key := NormalizeName(name)
	if key == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(recipe) == "" {
		return nil, ErrEmptyRecipe
	}

	now := time.Now()
	d := &Dish{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		nameKey:   key,
		recipe:    recipe,
		calories:  calories,
		aiModel:   aiModel,
		createdAt: now,
		updatedAt: now,
		events:    []shared.DomainEvent{},
	}

	d.addEvent(DishCreatedEvent{
		DishID:    d.id,
		Name:      d.name,
		CreatedAt: now,
	})

	return d, nil
}

// Reconstruct rebuilds a dish from persistence without raising events.
func Reconstruct(
	id uuid.UUID,
	name, nameKey, recipe string,
	rating float64,
	ratingCount int,
	calories *float64,
	aiModel string,
	createdAt, updatedAt time.Time,
) *Dish {
	return &Dish{
		id:          id,
		name:        name,
		nameKey:     nameKey,
		recipe:      recipe,
		rating:      rating,
		ratingCount: ratingCount,
		calories:    calories,
		aiModel:     aiModel,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the dish identifier
func (d *Dish) ID() uuid.UUID { return d.id }

// Name returns the display name of the dish
func (d *Dish) Name() string { return d.name }

// NameKey returns the normalized lookup key
func (d *Dish) NameKey() string { return d.nameKey }

// Recipe returns the stored recipe text
func (d *Dish) Recipe() string { return d.recipe }

// Rating returns the arithmetic mean of all submitted ratings
func (d *Dish) Rating() float64 { return d.rating }

// RatingCount returns how many ratings have been folded into the mean
func (d *Dish) RatingCount() int { return d.ratingCount }

// Calories returns the estimated calories, nil when never estimated
func (d *Dish) Calories() *float64 { return d.calories }

// AIModel returns the model identifier that produced the stored recipe
func (d *Dish) AIModel() string { return d.aiModel }

// CreatedAt returns the creation timestamp
func (d *Dish) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last modification timestamp
func (d *Dish) UpdatedAt() time.Time { return d.updatedAt }

// FoldRating incorporates one rating submission into the running mean:
//
//	newMean = (mean*count + value) / (count+1)
//
// The full rating history is not retained, only the aggregate.
func (d *Dish) FoldRating(value float64) error {
	if value < 1 || value > 5 {
		return ErrRatingOutOfRange
	}

	count := float64(d.ratingCount)
	d.rating = (d.rating*count + value) / (count + 1)
	d.ratingCount++
	d.updatedAt = time.Now()

	d.addEvent(DishRatedEvent{
		DishID:      d.id,
		Value:       value,
		NewMean:     d.rating,
		RatingCount: d.ratingCount,
		RatedAt:     d.updatedAt,
	})

	return nil
}

// AdoptLowerCalorie replaces the stored recipe when the candidate has a
// strictly lower calorie estimate than the stored one. The rating
// aggregate is kept: ratings grade the dish, not one recipe text.
// Returns true when the replacement happened. A dish whose stored
// calories were never estimated is never replaced.
func (d *Dish) AdoptLowerCalorie(recipe string, calories float64, aiModel string) bool {
	if d.calories == nil || calories >= *d.calories {
		return false
	}

	previous := *d.calories
	d.recipe = recipe
	c := calories
	d.calories = &c
	d.aiModel = aiModel
	d.updatedAt = time.Now()

	d.addEvent(DishRecipeReplacedEvent{
		DishID:           d.id,
		PreviousCalories: previous,
		NewCalories:      calories,
		ReplacedAt:       d.updatedAt,
	})

	return true
}

// Events returns and clears pending domain events
func (d *Dish) Events() []shared.DomainEvent {
	events := d.events
	d.events = []shared.DomainEvent{}
	return events
}

func (d *Dish) addEvent(event shared.DomainEvent) {
	d.events = append(d.events, event)
}
