// Package profiles implements the health-profile and referral use cases.
package profiles

import (
	"context"
	"strings"

	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/ports/inbound"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/errors"
	"go.uber.org/zap"
)

// ReferralBonusPoints is the credit each side of a referral receives
const ReferralBonusPoints = 50

// ProfileService implements the inbound.ProfileService port
type ProfileService struct {
	profileRepo outbound.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo outbound.ProfileRepository, logger *zap.Logger) inbound.ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger.Named("profile-service"),
	}
}

// GetOrCreate returns the user's profile, creating an empty one with a
// fresh referral code on first access.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID string) (*inbound.ProfileDTO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}

	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == outbound.ErrNotFound {
		p, err = profile.NewProfile(userID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := s.profileRepo.Create(ctx, p); err != nil {
			return nil, errors.NewDatabaseError("create profile", err)
		}
		s.logger.Info("Profile created", zap.String("user_id", userID))
	} else if err != nil {
		return nil, errors.NewDatabaseError("find profile", err)
	}

	return toProfileDTO(p), nil
}

// Update applies a partial update and recomputes BMI when measurements
// change. Nil command fields are left untouched.
func (s *ProfileService) Update(ctx context.Context, cmd inbound.UpdateProfileCommand) (*inbound.ProfileDTO, error) {
	p, err := s.load(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		p.SetName(*cmd.Name)
	}
	if cmd.Age != nil {
		if err := p.SetAge(*cmd.Age); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.WeightKg != nil {
		if err := p.SetWeight(*cmd.WeightKg); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.HeightCm != nil {
		if err := p.SetHeight(*cmd.HeightCm); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ChronicConditions != nil {
		if err := p.SetChronicConditions(*cmd.ChronicConditions); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.HealthGoal != nil {
		if err := p.SetHealthGoal(profile.HealthGoal(*cmd.HealthGoal)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.TargetWeightKg != nil {
		if err := p.SetTargetWeight(*cmd.TargetWeightKg); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, errors.NewDatabaseError("update profile", err)
	}

	return toProfileDTO(p), nil
}

// RedeemReferral credits the owner of the code and the redeeming user.
// The two writes are independent; a failure between them is logged but
// not rolled back.
func (s *ProfileService) RedeemReferral(ctx context.Context, userID, code string) (*inbound.ProfileDTO, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, errors.NewValidationError("referral code is required")
	}

	redeemer, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if redeemer.Redeemed() {
		return nil, errors.NewReferralRedeemedError(userID)
	}
	if redeemer.ReferralCode() == code {
		return nil, errors.NewReferralOwnCodeError()
	}

	referrer, err := s.profileRepo.FindByReferralCode(ctx, code)
	if err == outbound.ErrNotFound {
		return nil, errors.NewReferralNotFoundError(code)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find referral code", err)
	}

	referrer.AwardPoints(ReferralBonusPoints)
	if err := s.profileRepo.Update(ctx, referrer); err != nil {
		return nil, errors.NewDatabaseError("credit referrer", err)
	}

	redeemer.AwardPoints(ReferralBonusPoints)
	if err := redeemer.MarkRedeemed(code); err != nil {
		return nil, errors.NewReferralRedeemedError(userID)
	}
	if err := s.profileRepo.Update(ctx, redeemer); err != nil {
		// The referrer credit is not rolled back; the redeemer keeps
		// their unredeemed flag and may retry.
		s.logger.Error("Redeemer update failed after crediting referrer",
			zap.String("user_id", userID), zap.String("code", code), zap.Error(err))
		return nil, errors.NewDatabaseError("credit redeemer", err)
	}

	s.logger.Info("Referral redeemed",
		zap.String("user_id", userID),
		zap.String("referrer_user_id", referrer.UserID()))

	return toProfileDTO(redeemer), nil
}

func (s *ProfileService) load(ctx context.Context, userID string) (*profile.Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.NewValidationError("user id is required")
	}
	p, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == outbound.ErrNotFound {
		return nil, errors.NewProfileNotFoundError(userID)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find profile", err)
	}
	return p, nil
}

func toProfileDTO(p *profile.Profile) *inbound.ProfileDTO {
	return &inbound.ProfileDTO{
		ID:                p.ID(),
		UserID:            p.UserID(),
		Name:              p.Name(),
		Age:               p.Age(),
		WeightKg:          p.WeightKg(),
		HeightCm:          p.HeightCm(),
		BMI:               p.BMI(),
		ChronicConditions: p.ChronicConditions(),
		HealthGoal:        string(p.HealthGoal()),
		TargetWeightKg:    p.TargetWeightKg(),
		Points:            p.Points(),
		ReferralCode:      p.ReferralCode(),
		Redeemed:          p.Redeemed(),
	}
}
