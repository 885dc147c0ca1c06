package recipe

import "errors"

// Domain errors for catalog recipe operations

var (
	ErrEmptyTitle     = errors.New("recipe title must not be empty")
	ErrNoIngredients  = errors.New("recipe must have at least one ingredient")
	ErrNoSteps        = errors.New("recipe must have at least one step")
	ErrRecipeNotFound = errors.New("recipe not found")
)
