// Package recipes implements the recipe acquisition workflow, the rating
// aggregate and the health-profile recommendation on top of the domain
// entities and outbound ports.
package recipes

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/dishcovery/v1/internal/ports/inbound"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dishCacheTTL = time.Hour

// RecipeService implements the inbound.RecipeService port
type RecipeService struct {
	dishRepo    outbound.DishRepository
	recipeRepo  outbound.RecipeRepository
	profileRepo outbound.ProfileRepository
	cache       outbound.CacheRepository
	completion  outbound.CompletionService
	logger      *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	dishRepo outbound.DishRepository,
	recipeRepo outbound.RecipeRepository,
	profileRepo outbound.ProfileRepository,
	cache outbound.CacheRepository,
	completion outbound.CompletionService,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		dishRepo:    dishRepo,
		recipeRepo:  recipeRepo,
		profileRepo: profileRepo,
		cache:       cache,
		completion:  completion,
		logger:      logger.Named("recipe-service"),
	}
}

// cachedDish is the cache snapshot of a dish record
type cachedDish struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Recipe      string    `json:"recipe"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"rating_count"`
	Calories    *float64  `json:"calories"`
}

func dishCacheKey(nameKey string) string {
	return "dish:" + nameKey
}

// FindOrGenerate returns the stored record for a dish name, generating and
// persisting a new one only on a miss. A hit performs no completion call.
func (s *RecipeService) FindOrGenerate(ctx context.Context, cmd inbound.FindDishCommand) (*inbound.DishDTO, error) {
	key := dish.NormalizeName(cmd.DishName)
	if key == "" {
		return nil, errors.NewValidationError("dish name is required")
	}

	if dto := s.fromCache(ctx, key); dto != nil {
		s.logger.Debug("Dish served from cache", zap.String("name_key", key))
		return dto, nil
	}

	stored, err := s.dishRepo.FindByNameKey(ctx, key)
	if err == nil {
		s.storeInCache(ctx, stored)
		return s.toDishDTO(stored, inbound.DishSourceCache), nil
	}
	if err != outbound.ErrNotFound {
		return nil, errors.NewDatabaseError("find dish by name", err)
	}

	hints := s.profileHints(ctx, cmd.UserID)
	recipeText, err := s.completion.GenerateRecipeForDish(ctx, cmd.DishName, hints)
	if err != nil {
		s.logger.Error("Recipe generation failed", zap.String("dish", cmd.DishName), zap.Error(err))
		return nil, errors.NewCompletionError(err)
	}

	calories := s.estimateCalories(ctx, recipeText)
	created, err := s.createDish(ctx, cmd.DishName, recipeText, calories)
	if err != nil {
		return nil, err
	}

	return s.toDishDTO(created, inbound.DishSourceGenerated), nil
}

// GenerateFromIngredients always generates first, then reconciles the
// result against the stored record for the extracted dish name.
func (s *RecipeService) GenerateFromIngredients(ctx context.Context, cmd inbound.IngredientsCommand) (*inbound.DishDTO, error) {
	ingredients := make([]string, 0, len(cmd.Ingredients))
	for _, ing := range cmd.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return nil, errors.NewValidationError("at least one ingredient is required")
	}

	hints := s.profileHints(ctx, cmd.UserID)
	recipeText, err := s.completion.GenerateRecipeFromIngredients(ctx, ingredients, hints)
	if err != nil {
		s.logger.Error("Recipe generation failed",
			zap.Int("ingredient_count", len(ingredients)), zap.Error(err))
		return nil, errors.NewCompletionError(err)
	}

	calories := s.estimateCalories(ctx, recipeText)

	dishName, err := s.completion.ExtractDishName(ctx, recipeText)
	if err != nil || dish.NormalizeName(dishName) == "" {
		// Without a name there is nothing to deduplicate against; serve
		// the generation without persisting it.
		s.logger.Warn("Dish name extraction failed, serving unpersisted result", zap.Error(err))
		return &inbound.DishDTO{
			DishName: dishName,
			Recipe:   recipeText,
			Calories: &calories,
			Source:   inbound.DishSourceGenerated,
		}, nil
	}

	return s.reconcile(ctx, dishName, recipeText, calories)
}

// GenerateFromImage detects ingredients in a food photo and continues
// through the ingredient-mode workflow.
func (s *RecipeService) GenerateFromImage(ctx context.Context, cmd inbound.ImageCommand) (*inbound.DishDTO, error) {
	if cmd.ImageURL == "" && cmd.ImageBase64 == "" {
		return nil, errors.NewValidationError("an image url or base64 payload is required")
	}

	detected, err := s.completion.DetectIngredients(ctx, cmd.ImageURL, cmd.ImageBase64)
	if err != nil {
		s.logger.Error("Ingredient detection failed", zap.Error(err))
		return nil, errors.NewCompletionError(err)
	}

	ingredients := make([]string, 0)
	for _, ing := range strings.Split(detected, ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return nil, errors.NewBadRequestError("no ingredients recognized in the image")
	}

	return s.GenerateFromIngredients(ctx, inbound.IngredientsCommand{
		Ingredients: ingredients,
		UserID:      cmd.UserID,
	})
}

// reconcile applies the write-through policy for a freshly generated
// recipe against whatever is stored under the same dish name.
func (s *RecipeService) reconcile(ctx context.Context, dishName, recipeText string, calories float64) (*inbound.DishDTO, error) {
	key := dish.NormalizeName(dishName)

	stored, err := s.dishRepo.FindByNameKey(ctx, key)
	if err == outbound.ErrNotFound {
		created, err := s.createDish(ctx, dishName, recipeText, calories)
		if err != nil {
			return nil, err
		}
		return s.toDishDTO(created, inbound.DishSourceGenerated), nil
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find dish by name", err)
	}

	if stored.AdoptLowerCalorie(recipeText, calories, s.completionModel()) {
		if err := s.dishRepo.Update(ctx, stored); err != nil {
			return nil, errors.NewDatabaseError("update dish", err)
		}
		s.storeInCache(ctx, stored)
		s.logger.Info("Stored recipe replaced by lower-calorie variant",
			zap.String("name_key", key), zap.Float64("calories", calories))
		return s.toDishDTO(stored, inbound.DishSourceReplaced), nil
	}

	return s.toDishDTO(stored, inbound.DishSourceStored), nil
}

// SubmitRating folds one rating into the named dish's aggregate
func (s *RecipeService) SubmitRating(ctx context.Context, cmd inbound.RateDishCommand) (*inbound.DishDTO, error) {
	key := dish.NormalizeName(cmd.DishName)
	if key == "" {
		return nil, errors.NewValidationError("dish name is required")
	}

	stored, err := s.dishRepo.FindByNameKey(ctx, key)
	if err == outbound.ErrNotFound {
		return nil, errors.NewDishNotFoundError(cmd.DishName)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find dish by name", err)
	}

	if err := stored.FoldRating(cmd.Rating); err != nil {
		return nil, errors.NewInvalidRatingError(cmd.Rating)
	}

	if err := s.dishRepo.Update(ctx, stored); err != nil {
		return nil, errors.NewDatabaseError("update dish rating", err)
	}
	s.storeInCache(ctx, stored)

	s.logger.Info("Rating folded",
		zap.String("name_key", key),
		zap.Float64("value", cmd.Rating),
		zap.Float64("mean", stored.Rating()),
		zap.Int("count", stored.RatingCount()))

	return s.toDishDTO(stored, inbound.DishSourceStored), nil
}

// ListRecipes returns catalog recipes matching the filter
func (s *RecipeService) ListRecipes(ctx context.Context, filter inbound.RecipeFilter) ([]inbound.RecipeDTO, error) {
	all, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(all))
	for _, r := range all {
		if !r.MatchesCuisine(filter.Cuisine) || !r.ContainsIngredient(filter.Ingredient) {
			continue
		}
		dtos = append(dtos, toRecipeDTO(r))
	}
	return dtos, nil
}

// RecommendRecipe picks the catalog recipe best suited to the user's
// health profile.
func (s *RecipeService) RecommendRecipe(ctx context.Context, userID string) (*inbound.RecipeDTO, error) {
	all, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		// No profile yet: score without goals or conditions.
		p = &profile.Profile{}
	}

	chosen := pickHealthiest(all, p)
	if chosen == nil {
		return nil, errors.NewAppError(errors.CodeRecipeNotFound,
			"No recommendable recipe", "No recipe has interpretable nutrition facts for this profile")
	}

	dto := toRecipeDTO(chosen)
	return &dto, nil
}

// estimateCalories degrades to 0 on provider failure so acquisition can
// still complete; the parse-level "no number" fallback lives in the gateway.
func (s *RecipeService) estimateCalories(ctx context.Context, recipeText string) float64 {
	calories, err := s.completion.EstimateCalories(ctx, recipeText)
	if err != nil {
		s.logger.Warn("Calorie estimation failed, defaulting to 0", zap.Error(err))
		return 0
	}
	return calories
}

func (s *RecipeService) createDish(ctx context.Context, dishName, recipeText string, calories float64) (*dish.Dish, error) {
	created, err := dish.NewDish(dishName, recipeText, &calories, s.completionModel())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.dishRepo.Create(ctx, created); err != nil {
		return nil, errors.NewDatabaseError("create dish", err)
	}
	s.storeInCache(ctx, created)
	s.logger.Info("Dish created", zap.String("name_key", created.NameKey()))
	return created, nil
}

// profileHints loads optional health context; a missing profile simply
// yields empty hints.
func (s *RecipeService) profileHints(ctx context.Context, userID string) outbound.ProfileHints {
	if userID == "" {
		return outbound.ProfileHints{}
	}
	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return outbound.ProfileHints{}
	}
	return outbound.ProfileHints{
		ChronicConditions: p.ChronicConditions(),
		HealthGoal:        string(p.HealthGoal()),
		TargetWeightKg:    p.TargetWeightKg(),
	}
}

func (s *RecipeService) completionModel() string {
	return s.completion.Model()
}

func (s *RecipeService) fromCache(ctx context.Context, nameKey string) *inbound.DishDTO {
	data, err := s.cache.Get(ctx, dishCacheKey(nameKey))
	if err != nil {
		return nil
	}
	var snapshot cachedDish
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil
	}
	return &inbound.DishDTO{
		ID:          snapshot.ID,
		DishName:    snapshot.Name,
		Recipe:      snapshot.Recipe,
		Rating:      snapshot.Rating,
		RatingCount: snapshot.RatingCount,
		Calories:    snapshot.Calories,
		Source:      inbound.DishSourceCache,
	}
}

func (s *RecipeService) storeInCache(ctx context.Context, d *dish.Dish) {
	snapshot := cachedDish{
		ID:          d.ID(),
		Name:        d.Name(),
		Recipe:      d.Recipe(),
		Rating:      d.Rating(),
		RatingCount: d.RatingCount(),
		Calories:    d.Calories(),
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dishCacheKey(d.NameKey()), data, dishCacheTTL); err != nil {
		s.logger.Debug("Dish cache write failed", zap.Error(err))
	}
}

func (s *RecipeService) toDishDTO(d *dish.Dish, source inbound.DishSource) *inbound.DishDTO {
	return &inbound.DishDTO{
		ID:          d.ID(),
		DishName:    d.Name(),
		Recipe:      d.Recipe(),
		Rating:      d.Rating(),
		RatingCount: d.RatingCount(),
		Calories:    d.Calories(),
		Source:      source,
	}
}

func toRecipeDTO(r *recipe.Recipe) inbound.RecipeDTO {
	n := r.Nutrition()
	return inbound.RecipeDTO{
		ID:                 r.ID(),
		Title:              r.Title(),
		Cuisine:            r.Cuisine(),
		Ingredients:        r.Ingredients(),
		Steps:              r.Steps(),
		HealthyCookingTips: r.HealthyCookingTips(),
		Nutrition: inbound.NutritionDTO{
			Servings:     n.Servings,
			Energy:       n.Energy,
			Carbohydrate: n.Carbohydrate,
			Protein:      n.Protein,
			Fat:          n.Fat,
			SaturatedFat: n.SaturatedFat,
			Cholesterol:  n.Cholesterol,
			Fibre:        n.Fibre,
			Sodium:       n.Sodium,
		},
	}
}
