// Package gorm provides GORM model definitions and repositories for the
// application's persisted aggregates.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DishModel represents the GORM model for generated dishes
type DishModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	NameKey     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Recipe      string    `gorm:"type:text;not null"`
	Rating      float64   `gorm:"default:0"`
	RatingCount int       `gorm:"default:0"`
	Calories    *float64
	AIModel     string `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID                 uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Title              string      `gorm:"type:varchar(255);not null;index"`
	Cuisine            string      `gorm:"type:varchar(50);index"`
	Ingredients        StringSlice `gorm:"type:json"`
	Steps              StringSlice `gorm:"type:json"`
	HealthyCookingTips StringSlice `gorm:"type:json"`
	Nutrition          JSONField   `gorm:"type:json"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProfileModel represents the GORM model for health profiles
type ProfileModel struct {
	ID                uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name              string    `gorm:"type:varchar(255)"`
	Age               int       `gorm:"default:0"`
	WeightKg          float64   `gorm:"default:0"`
	HeightCm          float64   `gorm:"default:0"`
	BMI               float64   `gorm:"column:bmi;default:0"`
	ChronicConditions string    `gorm:"type:varchar(255)"`
	HealthGoal        string    `gorm:"type:varchar(50)"`
	TargetWeightKg    float64   `gorm:"default:0"`
	Points            int       `gorm:"default:0"`
	ReferralCode      string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	Redeemed          bool      `gorm:"default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EateryModel represents the GORM model for healthy-eatery directory rows
type EateryModel struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	BlockHouseNumber string    `gorm:"type:varchar(50)"`
	BuildingName     string    `gorm:"type:varchar(255)"`
	PostalCode       string    `gorm:"type:varchar(20)"`
	StreetName       string    `gorm:"type:varchar(255)"`
	Type             string    `gorm:"type:varchar(100)"`
	FloorNumber      string    `gorm:"type:varchar(20)"`
	UnitNumber       string    `gorm:"type:varchar(20)"`
	Description      string    `gorm:"type:text"`
	Coordinates      string    `gorm:"type:varchar(100)"`
	CreatedAt        time.Time
}

// IngredientModel represents the GORM model for the packaged-food reference list
type IngredientModel struct {
	ID                  uuid.UUID `gorm:"type:char(36);primaryKey"`
	BrandAndProductName string    `gorm:"type:varchar(255);not null;index"`
	PackageSize         string    `gorm:"type:varchar(100)"`
	CreatedAt           time.Time
}

// StringSlice is a JSON-backed string slice column
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	return string(data), err
}

// JSONField is a JSON-backed map column
type JSONField map[string]interface{}

// Scan implements the sql.Scanner interface
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = JSONField{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}

// Value implements the driver.Valuer interface
func (j JSONField) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	data, err := json.Marshal(j)
	return string(data), err
}

// BeforeCreate hook for DishModel
func (d *DishModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for ProfileModel
func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for EateryModel
func (e *EateryModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (DishModel) TableName() string {
	return "dishes"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (EateryModel) TableName() string {
	return "healthy_eateries"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}
