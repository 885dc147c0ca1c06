package gorm

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&DishModel{},
		&RecipeModel{},
		&ProfileModel{},
		&EateryModel{},
		&IngredientModel{},
	)
}

// Seed loads the starter directory and reference data. It is idempotent:
// tables that already hold rows are left untouched.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	if err := seedEateries(db, logger); err != nil {
		return err
	}
	if err := seedIngredients(db, logger); err != nil {
		return err
	}
	if err := seedRecipes(db, logger); err != nil {
		return err
	}
	return nil
}

func seedEateries(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&EateryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	eateries := []EateryModel{
		{
			Name:             "Greenleaf Salad Bar",
			BlockHouseNumber: "12",
			BuildingName:     "Maxwell Food Centre",
			PostalCode:       "069184",
			StreetName:       "Maxwell Road",
			Type:             "Salad Bar",
			FloorNumber:      "01",
			UnitNumber:       "45",
			Description:      "Build-your-own salads with lean protein options",
			Coordinates:      "103.8443,1.2804",
		},
		{
			Name:             "Steam & Grain",
			BlockHouseNumber: "531A",
			BuildingName:     "Upper Cross Street Hawker Centre",
			PostalCode:       "051531",
			StreetName:       "Upper Cross Street",
			Type:             "Hawker Stall",
			FloorNumber:      "02",
			UnitNumber:       "33",
			Description:      "Steamed dishes with brown rice, low sodium",
			Coordinates:      "103.8434,1.2851",
		},
		{
			Name:             "Harvest Bowl Kitchen",
			BlockHouseNumber: "3",
			BuildingName:     "Temasek Boulevard Tower",
			PostalCode:       "038983",
			StreetName:       "Temasek Boulevard",
			Type:             "Restaurant",
			FloorNumber:      "B1",
			UnitNumber:       "128",
			Description:      "Grain bowls with calorie-labelled menu",
			Coordinates:      "103.8590,1.2931",
		},
		{
			Name:             "Wholesome Wok",
			BlockHouseNumber: "448",
			PostalCode:       "560448",
			StreetName:       "Ang Mo Kio Avenue 10",
			Type:             "Hawker Stall",
			FloorNumber:      "01",
			UnitNumber:       "12",
			Description:      "Stir-fry with reduced-oil cooking",
			Coordinates:      "103.8553,1.3644",
		},
	}

	if err := db.Create(&eateries).Error; err != nil {
		return fmt.Errorf("failed to seed eateries: %w", err)
	}

	logger.Info("Seeded healthy eateries", zap.Int("count", len(eateries)))
	return nil
}

func seedIngredients(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&IngredientModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ingredients := []IngredientModel{
		{BrandAndProductName: "Nature's Farm Rolled Oats", PackageSize: "500g"},
		{BrandAndProductName: "SunGold Wholemeal Bread", PackageSize: "400g"},
		{BrandAndProductName: "Pacific Harvest Canned Tuna in Water", PackageSize: "185g"},
		{BrandAndProductName: "GreenFields Low Fat Milk", PackageSize: "1L"},
		{BrandAndProductName: "Golden Valley Brown Rice", PackageSize: "1kg"},
		{BrandAndProductName: "Alpine Dairy Plain Greek Yogurt", PackageSize: "500g"},
		{BrandAndProductName: "OrchardFresh Unsweetened Almond Milk", PackageSize: "946ml"},
		{BrandAndProductName: "SeaCrest Reduced Sodium Soy Sauce", PackageSize: "250ml"},
	}

	if err := db.Create(&ingredients).Error; err != nil {
		return fmt.Errorf("failed to seed ingredients: %w", err)
	}

	logger.Info("Seeded reference ingredients", zap.Int("count", len(ingredients)))
	return nil
}

func seedRecipes(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	recipes := []RecipeModel{
		{
			Title:   "Steamed Ginger Chicken with Brown Rice",
			Cuisine: "Chinese",
			Ingredients: StringSlice{
				"200g skinless chicken breast",
				"1 cup brown rice",
				"2 slices ginger",
				"1 tbsp reduced sodium soy sauce",
				"1 stalk spring onion",
			},
			Steps: StringSlice{
				"Marinate the chicken with ginger and soy sauce for 15 minutes.",
				"Steam the chicken over medium heat for 12 minutes.",
				"Serve over cooked brown rice and garnish with spring onion.",
			},
			HealthyCookingTips: StringSlice{
				"Steaming avoids added oil.",
				"Brown rice keeps the glycemic load lower than white rice.",
			},
			Nutrition: JSONField{
				"servings":     "2",
				"energy":       "420 kcal",
				"protein":      "38 g",
				"carbohydrate": "45 g",
				"fat":          "8 g",
				"sodium":       "520 mg",
				"cholesterol":  "85 mg",
			},
		},
		{
			Title:   "Grilled Salmon with Quinoa Salad",
			Cuisine: "Western",
			Ingredients: StringSlice{
				"150g salmon fillet",
				"1/2 cup quinoa",
				"1 cup mixed greens",
				"1 tbsp olive oil",
				"1/2 lemon",
			},
			Steps: StringSlice{
				"Cook the quinoa and let it cool.",
				"Grill the salmon for 4 minutes per side.",
				"Toss the quinoa with greens, olive oil and lemon juice, then top with salmon.",
			},
			HealthyCookingTips: StringSlice{
				"Salmon provides omega-3 fats.",
				"Dress the salad lightly to keep total fat in check.",
			},
			Nutrition: JSONField{
				"servings":     "1",
				"energy":       "480 kcal",
				"protein":      "34 g",
				"carbohydrate": "32 g",
				"fat":          "22 g",
				"sodium":       "310 mg",
				"cholesterol":  "62 mg",
			},
		},
		{
			Title:   "Tofu and Vegetable Curry",
			Cuisine: "Indian",
			Ingredients: StringSlice{
				"200g firm tofu",
				"1 cup cauliflower florets",
				"1/2 cup light coconut milk",
				"1 tbsp curry powder",
				"1 medium tomato",
			},
			Steps: StringSlice{
				"Saute the curry powder with tomato until fragrant.",
				"Add cauliflower and light coconut milk and simmer for 8 minutes.",
				"Add cubed tofu and simmer for another 5 minutes.",
			},
			HealthyCookingTips: StringSlice{
				"Light coconut milk cuts the saturated fat by half.",
				"Tofu is a cholesterol-free protein source.",
			},
			Nutrition: JSONField{
				"servings":     "2",
				"energy":       "350 kcal",
				"protein":      "22 g",
				"carbohydrate": "24 g",
				"fat":          "18 g",
				"sodium":       "440 mg",
				"cholesterol":  "0 mg",
			},
		},
	}

	if err := db.Create(&recipes).Error; err != nil {
		return fmt.Errorf("failed to seed recipes: %w", err)
	}

	logger.Info("Seeded catalog recipes", zap.Int("count", len(recipes)))
	return nil
}
