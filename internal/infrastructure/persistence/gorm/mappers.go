package gorm

import (
	"strings"

	"github.com/dishcovery/v1/internal/domain/dish"
	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/dishcovery/v1/internal/ports/outbound"
)

// DishToModel converts a domain dish to its GORM model
func DishToModel(d *dish.Dish) *DishModel {
	return &DishModel{
		ID:          d.ID(),
		Name:        d.Name(),
		NameKey:     d.NameKey(),
		Recipe:      d.Recipe(),
		Rating:      d.Rating(),
		RatingCount: d.RatingCount(),
		Calories:    d.Calories(),
		AIModel:     d.AIModel(),
		CreatedAt:   d.CreatedAt(),
		UpdatedAt:   d.UpdatedAt(),
	}
}

// DishFromModel converts a GORM model to the domain dish
func DishFromModel(m *DishModel) *dish.Dish {
	return dish.Reconstruct(
		m.ID, m.Name, m.NameKey, m.Recipe,
		m.Rating, m.RatingCount, m.Calories, m.AIModel,
		m.CreatedAt, m.UpdatedAt,
	)
}

// RecipeToModel converts a catalog recipe to its GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	n := r.Nutrition()
	return &RecipeModel{
		ID:                 r.ID(),
		Title:              r.Title(),
		Cuisine:            r.Cuisine(),
		Ingredients:        StringSlice(r.Ingredients()),
		Steps:              StringSlice(r.Steps()),
		HealthyCookingTips: StringSlice(r.HealthyCookingTips()),
		Nutrition: JSONField{
			"servings":      n.Servings,
			"energy":        n.Energy,
			"carbohydrate":  n.Carbohydrate,
			"protein":       n.Protein,
			"fat":           n.Fat,
			"saturated_fat": n.SaturatedFat,
			"cholesterol":   n.Cholesterol,
			"fibre":         n.Fibre,
			"sodium":        n.Sodium,
		},
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

// RecipeFromModel converts a GORM model to the catalog recipe
func RecipeFromModel(m *RecipeModel) *recipe.Recipe {
	n := recipe.Nutrition{
		Servings:     jsonString(m.Nutrition, "servings"),
		Energy:       jsonString(m.Nutrition, "energy"),
		Carbohydrate: jsonString(m.Nutrition, "carbohydrate"),
		Protein:      jsonString(m.Nutrition, "protein"),
		Fat:          jsonString(m.Nutrition, "fat"),
		SaturatedFat: jsonString(m.Nutrition, "saturated_fat"),
		Cholesterol:  jsonString(m.Nutrition, "cholesterol"),
		Fibre:        jsonString(m.Nutrition, "fibre"),
		Sodium:       jsonString(m.Nutrition, "sodium"),
	}
	return recipe.Reconstruct(
		m.ID, m.Title, m.Cuisine,
		m.Ingredients, m.Steps, m.HealthyCookingTips,
		n, m.CreatedAt, m.UpdatedAt,
	)
}

func jsonString(f JSONField, key string) string {
	if f == nil {
		return ""
	}
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// ProfileToModel converts a domain profile to its GORM model.
// Chronic condition tags are stored comma-joined.
func ProfileToModel(p *profile.Profile) *ProfileModel {
	return &ProfileModel{
		ID:                p.ID(),
		UserID:            p.UserID(),
		Name:              p.Name(),
		Age:               p.Age(),
		WeightKg:          p.WeightKg(),
		HeightCm:          p.HeightCm(),
		BMI:               p.BMI(),
		ChronicConditions: strings.Join(p.ChronicConditions(), ","),
		HealthGoal:        string(p.HealthGoal()),
		TargetWeightKg:    p.TargetWeightKg(),
		Points:            p.Points(),
		ReferralCode:      p.ReferralCode(),
		Redeemed:          p.Redeemed(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

// ProfileFromModel converts a GORM model to the domain profile
func ProfileFromModel(m *ProfileModel) *profile.Profile {
	var conditions []string
	if m.ChronicConditions != "" {
		conditions = strings.Split(m.ChronicConditions, ",")
	}
	return profile.Reconstruct(
		m.ID, m.UserID, m.Name, m.Age,
		m.WeightKg, m.HeightCm, m.BMI,
		conditions, profile.HealthGoal(m.HealthGoal),
		m.TargetWeightKg, m.Points,
		m.ReferralCode, m.Redeemed,
		m.CreatedAt, m.UpdatedAt,
	)
}

// EateryFromModel converts a GORM model to the domain eatery
func EateryFromModel(m *EateryModel) *eatery.HealthyEatery {
	return eatery.Reconstruct(
		m.ID, m.Name,
		eatery.Address{
			BlockHouseNumber: m.BlockHouseNumber,
			BuildingName:     m.BuildingName,
			PostalCode:       m.PostalCode,
			StreetName:       m.StreetName,
			Type:             m.Type,
			FloorNumber:      m.FloorNumber,
			UnitNumber:       m.UnitNumber,
		},
		m.Description, m.Coordinates, m.CreatedAt,
	)
}

// IngredientFromModel converts a GORM model to the reference row
func IngredientFromModel(m *IngredientModel) outbound.ReferenceIngredient {
	return outbound.ReferenceIngredient{
		ID:                  m.ID,
		BrandAndProductName: m.BrandAndProductName,
		PackageSize:         m.PackageSize,
	}
}
