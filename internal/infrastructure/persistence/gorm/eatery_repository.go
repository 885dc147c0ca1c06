package gorm

import (
	"context"

	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// EateryRepository implements the eatery directory repository using GORM
type EateryRepository struct {
	db *gorm.DB
}

// NewEateryRepository creates a new eatery repository
func NewEateryRepository(db *gorm.DB) outbound.EateryRepository {
	return &EateryRepository{db: db}
}

// FindAll returns the full healthy-eatery directory
func (r *EateryRepository) FindAll(ctx context.Context) ([]*eatery.HealthyEatery, error) {
	var models []EateryModel

	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	eateries := make([]*eatery.HealthyEatery, len(models))
	for i := range models {
		eateries[i] = EateryFromModel(&models[i])
	}
	return eateries, nil
}
