package inbound

import (
	"context"

	"github.com/google/uuid"
)

// IngredientService defines the packaged-food reference search use case
type IngredientService interface {
	// Search filters the reference list by product name substring
	Search(ctx context.Context, query string) ([]IngredientDTO, error)
}

// IngredientDTO is one packaged-food reference row
type IngredientDTO struct {
	ID                  uuid.UUID `json:"id"`
	BrandAndProductName string    `json:"brand_and_product_name"`
	PackageSize         string    `json:"package_size"`
}
