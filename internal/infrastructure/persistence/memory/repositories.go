package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/dishcovery/v1/internal/ports/outbound"
)

// DishRepository is an in-memory dish store keyed by ID and by
// normalized name.
type DishRepository struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]*dish.Dish
	byNameKey map[string]*dish.Dish
}

// NewDishRepository creates an empty in-memory dish repository.
func NewDishRepository() *DishRepository {
	return &DishRepository{
		byID:      make(map[uuid.UUID]*dish.Dish),
		byNameKey: make(map[string]*dish.Dish),
	}
}

func (r *DishRepository) Create(ctx context.Context, d *dish.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[d.ID()] = d
	r.byNameKey[d.NameKey()] = d
	return nil
}

func (r *DishRepository) Update(ctx context.Context, d *dish.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[d.ID()]; !ok {
		return outbound.ErrNotFound
	}
	r.byID[d.ID()] = d
	r.byNameKey[d.NameKey()] = d
	return nil
}

func (r *DishRepository) FindByID(ctx context.Context, id uuid.UUID) (*dish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return d, nil
}

func (r *DishRepository) FindByNameKey(ctx context.Context, nameKey string) (*dish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byNameKey[nameKey]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return d, nil
}

func (r *DishRepository) FindAll(ctx context.Context) ([]*dish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dishes := make([]*dish.Dish, 0, len(r.byID))
	for _, d := range r.byID {
		dishes = append(dishes, d)
	}
	sort.Slice(dishes, func(i, j int) bool {
		return strings.Compare(dishes[i].Name(), dishes[j].Name()) < 0
	})
	return dishes, nil
}

// RecipeRepository is an in-memory catalog recipe store.
type RecipeRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*recipe.Recipe
}

// NewRecipeRepository creates an empty in-memory recipe repository.
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{byID: make(map[uuid.UUID]*recipe.Recipe)}
}

func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[rec.ID()] = rec
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return rec, nil
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipes := make([]*recipe.Recipe, 0, len(r.byID))
	for _, rec := range r.byID {
		recipes = append(recipes, rec)
	}
	sort.Slice(recipes, func(i, j int) bool {
		return strings.Compare(recipes[i].Title(), recipes[j].Title()) < 0
	})
	return recipes, nil
}

// ProfileRepository is an in-memory health profile store.
type ProfileRepository struct {
	mu       sync.RWMutex
	byUserID map[string]*profile.Profile
}

// NewProfileRepository creates an empty in-memory profile repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{byUserID: make(map[string]*profile.Profile)}
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUserID[p.UserID()] = p
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUserID[p.UserID()]; !ok {
		return outbound.ErrNotFound
	}
	r.byUserID[p.UserID()] = p
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUserID[userID]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return p, nil
}

func (r *ProfileRepository) FindByReferralCode(ctx context.Context, code string) (*profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.byUserID {
		if p.ReferralCode() == code {
			return p, nil
		}
	}
	return nil, outbound.ErrNotFound
}

// EateryRepository is a fixed in-memory eatery directory.
type EateryRepository struct {
	eateries []*eatery.HealthyEatery
}

// NewEateryRepository creates an eatery repository serving the given rows.
func NewEateryRepository(eateries []*eatery.HealthyEatery) *EateryRepository {
	return &EateryRepository{eateries: eateries}
}

func (r *EateryRepository) FindAll(ctx context.Context) ([]*eatery.HealthyEatery, error) {
	return r.eateries, nil
}

// IngredientRepository is a fixed in-memory packaged-food reference list.
type IngredientRepository struct {
	rows []outbound.ReferenceIngredient
}

// NewIngredientRepository creates an ingredient repository serving the given rows.
func NewIngredientRepository(rows []outbound.ReferenceIngredient) *IngredientRepository {
	return &IngredientRepository{rows: rows}
}

func (r *IngredientRepository) FindAll(ctx context.Context) ([]outbound.ReferenceIngredient, error) {
	return r.rows, nil
}
