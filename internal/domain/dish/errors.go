package dish

import "errors"

// Domain errors for dish operations

var (
	ErrEmptyName        = errors.New("dish name must not be empty")
	ErrEmptyRecipe      = errors.New("dish recipe text must not be empty")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrDishNotFound     = errors.New("dish not found")
)
