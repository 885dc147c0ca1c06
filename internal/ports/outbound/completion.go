package outbound

import "context"

// ProfileHints carries the optional health-profile context that is woven
// into recipe generation prompts.
type ProfileHints struct {
	ChronicConditions []string
	HealthGoal        string
	TargetWeightKg    float64
}

// CompletionService defines the interface to the chat-completion provider.
// The high-level methods own their prompt templates so application services
// never assemble raw prompts.
type CompletionService interface {
	// Model returns the configured model identifier
	Model() string

	// Complete performs a single-turn user-role completion
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)

	// GenerateRecipeForDish produces a healthy recipe for a named dish
	GenerateRecipeForDish(ctx context.Context, dishName string, hints ProfileHints) (string, error)

	// GenerateRecipeFromIngredients produces a healthy recipe using the given ingredients
	GenerateRecipeFromIngredients(ctx context.Context, ingredients []string, hints ProfileHints) (string, error)

	// EstimateCalories asks for a calorie estimate of a recipe text.
	// Returns 0 when the reply carries no number.
	EstimateCalories(ctx context.Context, recipeText string) (float64, error)

	// ExtractDishName asks for the dish name of a recipe text
	ExtractDishName(ctx context.Context, recipeText string) (string, error)

	// DetectIngredients identifies ingredients visible in a food image,
	// given as URL or base64 payload, returned as a comma-joined list
	DetectIngredients(ctx context.Context, imageURL, imageBase64 string) (string, error)
}
