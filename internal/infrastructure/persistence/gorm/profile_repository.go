package gorm

import (
	"context"
	"errors"

	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// ProfileRepository implements the profile repository interface using GORM
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) outbound.ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	model := ProfileToModel(p)

	result := r.db.WithContext(ctx).Create(model)
	return result.Error
}

// Update updates an existing profile
func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := ProfileToModel(p)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// FindByUserID finds a profile by its owning user
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	var model ProfileModel

	result := r.db.WithContext(ctx).First(&model, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ProfileFromModel(&model), nil
}

// FindByReferralCode finds the profile owning a referral code
func (r *ProfileRepository) FindByReferralCode(ctx context.Context, code string) (*profile.Profile, error) {
	var model ProfileModel

	result := r.db.WithContext(ctx).First(&model, "referral_code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, result.Error
	}

	return ProfileFromModel(&model), nil
}
