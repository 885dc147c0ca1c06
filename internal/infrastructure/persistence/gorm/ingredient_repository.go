package gorm

import (
	"context"

	"github.com/dishcovery/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// IngredientRepository implements the reference list repository using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// FindAll returns the full packaged-food reference list
func (r *IngredientRepository) FindAll(ctx context.Context) ([]outbound.ReferenceIngredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).Order("brand_and_product_name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]outbound.ReferenceIngredient, len(models))
	for i := range models {
		rows[i] = IngredientFromModel(&models[i])
	}
	return rows, nil
}
