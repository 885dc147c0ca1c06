package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dishcovery/v1/internal/ports/inbound"
)

// IngredientHandlers handles packaged-food reference list requests
type IngredientHandlers struct {
	ingredientService inbound.IngredientService
	logger            *zap.Logger
}

// NewIngredientHandlers creates a new ingredient handlers instance
func NewIngredientHandlers(ingredientService inbound.IngredientService, logger *zap.Logger) *IngredientHandlers {
	return &IngredientHandlers{
		ingredientService: ingredientService,
		logger:            logger,
	}
}

// Search handles GET /api/v1/ingredients
func (h *IngredientHandlers) Search(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ingredientService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, rows)
}
