package inbound

import (
	"context"

	"github.com/google/uuid"
)

// ProfileService defines the health profile and referral use cases
type ProfileService interface {
	// GetOrCreate returns the user's profile, creating it on first access
	GetOrCreate(ctx context.Context, userID string) (*ProfileDTO, error)

	// Update applies a partial profile update and recomputes derived values
	Update(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error)

	// RedeemReferral credits the owner of the code and the redeeming user
	RedeemReferral(ctx context.Context, userID, code string) (*ProfileDTO, error)
}

// UpdateProfileCommand carries a partial profile update; nil fields are
// left untouched.
type UpdateProfileCommand struct {
	UserID            string `validate:"required"`
	Name              *string
	Age               *int
	WeightKg          *float64
	HeightCm          *float64
	ChronicConditions *[]string
	HealthGoal        *string
	TargetWeightKg    *float64
}

// ProfileDTO is the API-facing view of a health profile
type ProfileDTO struct {
	ID                uuid.UUID `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	WeightKg          float64   `json:"weight_kg"`
	HeightCm          float64   `json:"height_cm"`
	BMI               float64   `json:"bmi"`
	ChronicConditions []string  `json:"chronic_conditions"`
	HealthGoal        string    `json:"health_goal"`
	TargetWeightKg    float64   `json:"target_weight_kg"`
	Points            int       `json:"points"`
	ReferralCode      string    `json:"referral_code"`
	Redeemed          bool      `json:"redeemed"`
}
