package dish

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the dish domain

// DishCreatedEvent is raised when a generated recipe is stored for the first time
type DishCreatedEvent struct {
	DishID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (e DishCreatedEvent) EventName() string {
	return "dish.created"
}

func (e DishCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// DishRatedEvent is raised when a rating is folded into the aggregate
type DishRatedEvent struct {
	DishID      uuid.UUID
	Value       float64
	NewMean     float64
	RatingCount int
	RatedAt     time.Time
}

func (e DishRatedEvent) EventName() string {
	return "dish.rated"
}

func (e DishRatedEvent) OccurredAt() time.Time {
	return e.RatedAt
}

// DishRecipeReplacedEvent is raised when a lower-calorie variant overwrites
// the stored recipe text
type DishRecipeReplacedEvent struct {
	DishID           uuid.UUID
	PreviousCalories float64
	NewCalories      float64
	ReplacedAt       time.Time
}

func (e DishRecipeReplacedEvent) EventName() string {
	return "dish.recipe.replaced"
}

func (e DishRecipeReplacedEvent) OccurredAt() time.Time {
	return e.ReplacedAt
}
