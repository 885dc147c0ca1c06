package gorm

import (
	"context"
	"errors"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DishRepository implements the dish repository interface using GORM
type DishRepository struct {
	db *gorm.DB
}

// NewDishRepository creates a new dish repository
func NewDishRepository(db *gorm.DB) outbound.DishRepository {
	return &DishRepository{db: db}
}

// Create creates a new dish record
func (r *DishRepository) Create(ctx context.Context, d *dish.Dish) error {
	model := DishToModel(d)

	result := r.db.WithContext(ctx).Create(model)
	return result.Error
}

// Update updates an existing dish record
func (r *DishRepository) Update(ctx context.Context, d *dish.Dish) error {
	model := DishToModel(d)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByID finds a dish by ID
func (r *DishRepository) FindByID(ctx context.Context, id uuid.UUID) (*dish.Dish, error) {
	var model DishModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return DishFromModel(&model), nil
}

// FindByNameKey finds a dish by its normalized name key
func (r *DishRepository) FindByNameKey(ctx context.Context, nameKey string) (*dish.Dish, error) {
	var model DishModel

	result := r.db.WithContext(ctx).First(&model, "name_key = ?", nameKey)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return DishFromModel(&model), nil
}

// FindAll returns all dish records
func (r *DishRepository) FindAll(ctx context.Context) ([]*dish.Dish, error) {
	var models []DishModel

	result := r.db.WithContext(ctx).Order("name_key").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	dishes := make([]*dish.Dish, len(models))
	for i := range models {
		dishes[i] = DishFromModel(&models[i])
	}
	return dishes, nil
}
