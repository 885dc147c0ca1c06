package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dishcovery/v1/internal/ports/inbound"
)

// RecipeHandlers handles recipe acquisition, rating and catalog requests
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

type searchRecipeRequest struct {
	DishName string `json:"dish_name" validate:"required"`
}

type byIngredientsRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}

type byImageRequest struct {
	ImageURL    string `json:"image_url"`
	ImageBase64 string `json:"image_base64"`
}

type rateDishRequest struct {
	DishName string  `json:"dish_name" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,gte=1,lte=5"`
}

// SearchRecipe handles POST /api/v1/recipes/search
func (h *RecipeHandlers) SearchRecipe(w http.ResponseWriter, r *http.Request) {
	var req searchRecipeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.FindOrGenerate(r.Context(), inbound.FindDishCommand{
		DishName: req.DishName,
		UserID:   r.Header.Get(userIDHeader),
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// GenerateByIngredients handles POST /api/v1/recipes/by-ingredients
func (h *RecipeHandlers) GenerateByIngredients(w http.ResponseWriter, r *http.Request) {
	var req byIngredientsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.GenerateFromIngredients(r.Context(), inbound.IngredientsCommand{
		Ingredients: req.Ingredients,
		UserID:      r.Header.Get(userIDHeader),
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// GenerateByImage handles POST /api/v1/recipes/by-image
func (h *RecipeHandlers) GenerateByImage(w http.ResponseWriter, r *http.Request) {
	var req byImageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.GenerateFromImage(r.Context(), inbound.ImageCommand{
		ImageURL:    req.ImageURL,
		ImageBase64: req.ImageBase64,
		UserID:      r.Header.Get(userIDHeader),
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// RateDish handles POST /api/v1/dishes/rating
func (h *RecipeHandlers) RateDish(w http.ResponseWriter, r *http.Request) {
	var req rateDishRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.SubmitRating(r.Context(), inbound.RateDishCommand{
		DishName: req.DishName,
		Rating:   req.Rating,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	filter := inbound.RecipeFilter{
		Cuisine:    r.URL.Query().Get("cuisine"),
		Ingredient: r.URL.Query().Get("ingredient"),
	}

	recipes, err := h.recipeService.ListRecipes(r.Context(), filter)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, recipes)
}

// RecommendRecipe handles GET /api/v1/recipes/recommended
func (h *RecipeHandlers) RecommendRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.recipeService.RecommendRecipe(r.Context(), userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}
