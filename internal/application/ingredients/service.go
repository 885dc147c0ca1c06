// Package ingredients implements the packaged-food reference search.
package ingredients

import (
	"context"
	"strings"

	"github.com/dishcovery/v1/internal/ports/inbound"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/errors"
	"go.uber.org/zap"
)

// IngredientService implements the inbound.IngredientService port
type IngredientService struct {
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewIngredientService creates a new ingredient service
func NewIngredientService(ingredientRepo outbound.IngredientRepository, logger *zap.Logger) inbound.IngredientService {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("ingredient-service"),
	}
}

// Search filters the reference list by a case-insensitive substring of
// the brand-and-product name. An empty query returns the full list.
func (s *IngredientService) Search(ctx context.Context, query string) ([]inbound.IngredientDTO, error) {
	all, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	results := make([]inbound.IngredientDTO, 0, len(all))
	for _, row := range all {
		if needle != "" && !strings.Contains(strings.ToLower(row.BrandAndProductName), needle) {
			continue
		}
		results = append(results, inbound.IngredientDTO{
			ID:                  row.ID,
			BrandAndProductName: row.BrandAndProductName,
			PackageSize:         row.PackageSize,
		})
	}
	return results, nil
}
