package profiles

import (
	"context"
	"testing"

	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/ports/inbound"
	"github.com/dishcovery/v1/internal/ports/outbound"
	apperrors "github.com/dishcovery/v1/pkg/errors"
	"github.com/dishcovery/v1/pkg/logger"
	"github.com/dishcovery/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProfileServiceTestSuite provides a test suite for the profile service
type ProfileServiceTestSuite struct {
	suite.Suite
	profileRepo *testutils.MockProfileRepository
	service     inbound.ProfileService
	ctx         context.Context
}

func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.profileRepo = new(testutils.MockProfileRepository)
	suite.service = NewProfileService(suite.profileRepo, logger.NewNop())
	suite.ctx = context.Background()
}

func newStoredProfile(t mock.TestingT, userID string) *profile.Profile {
	p, err := profile.NewProfile(userID)
	if err != nil {
		t.Errorf("fixture profile: %v", err)
		t.FailNow()
	}
	p.Events()
	return p
}

// TestGetOrCreate tests lazy profile creation
func (suite *ProfileServiceTestSuite) TestGetOrCreate() {
	suite.Run("MissingProfile_ShouldCreateWithReferralCode", func() {
		suite.SetupTest()
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(nil, outbound.ErrNotFound)
		suite.profileRepo.On("Create", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil)

		dto, err := suite.service.GetOrCreate(suite.ctx, "user-1")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "user-1", dto.UserID)
		assert.Regexp(suite.T(), "^[A-Z0-9]{8}$", dto.ReferralCode)
		suite.profileRepo.AssertExpectations(suite.T())
	})

	suite.Run("ExistingProfile_ShouldReturnStableReferralCode", func() {
		suite.SetupTest()
		stored := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(stored, nil)

		first, err := suite.service.GetOrCreate(suite.ctx, "user-1")
		require.NoError(suite.T(), err)
		second, err := suite.service.GetOrCreate(suite.ctx, "user-1")
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), first.ReferralCode, second.ReferralCode)
		suite.profileRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	})

	suite.Run("EmptyUserID_ShouldReturnValidationError", func() {
		suite.SetupTest()

		_, err := suite.service.GetOrCreate(suite.ctx, " ")

		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

// TestUpdate tests partial updates and BMI recomputation
func (suite *ProfileServiceTestSuite) TestUpdate() {
	suite.Run("WeightAndHeight_ShouldRecomputeBMI", func() {
		suite.SetupTest()
		stored := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(stored, nil)
		suite.profileRepo.On("Update", mock.Anything, stored).Return(nil)

		weight, height := 70.0, 175.0
		dto, err := suite.service.Update(suite.ctx, inbound.UpdateProfileCommand{
			UserID: "user-1", WeightKg: &weight, HeightCm: &height,
		})

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 22.857, dto.BMI, 0.001)
	})

	suite.Run("ImplausibleWeight_ShouldReturnValidationError", func() {
		suite.SetupTest()
		stored := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(stored, nil)

		weight := -10.0
		_, err := suite.service.Update(suite.ctx, inbound.UpdateProfileCommand{UserID: "user-1", WeightKg: &weight})

		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeValidationFailed))
		suite.profileRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
	})

	suite.Run("GoalAndConditions_ShouldBeStored", func() {
		suite.SetupTest()
		stored := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(stored, nil)
		suite.profileRepo.On("Update", mock.Anything, stored).Return(nil)

		goal := string(profile.GoalLoseWeight)
		conditions := []string{"dm", "htn"}
		dto, err := suite.service.Update(suite.ctx, inbound.UpdateProfileCommand{
			UserID: "user-1", HealthGoal: &goal, ChronicConditions: &conditions,
		})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "lose_weight", dto.HealthGoal)
		assert.Equal(suite.T(), []string{"dm", "htn"}, dto.ChronicConditions)
	})
}

// TestRedeemReferral tests the two-sided referral credit
func (suite *ProfileServiceTestSuite) TestRedeemReferral() {
	suite.Run("ValidCode_ShouldCreditBothSidesAndSetFlag", func() {
		suite.SetupTest()
		redeemer := newStoredProfile(suite.T(), "user-1")
		referrer := newStoredProfile(suite.T(), "user-2")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(redeemer, nil)
		suite.profileRepo.On("FindByReferralCode", mock.Anything, referrer.ReferralCode()).Return(referrer, nil)
		suite.profileRepo.On("Update", mock.Anything, referrer).Return(nil)
		suite.profileRepo.On("Update", mock.Anything, redeemer).Return(nil)

		dto, err := suite.service.RedeemReferral(suite.ctx, "user-1", referrer.ReferralCode())

		require.NoError(suite.T(), err)
		assert.True(suite.T(), dto.Redeemed)
		assert.Equal(suite.T(), ReferralBonusPoints, dto.Points)
		assert.Equal(suite.T(), ReferralBonusPoints, referrer.Points())
		suite.profileRepo.AssertExpectations(suite.T())
	})

	suite.Run("SecondRedeem_ShouldBeRejected", func() {
		suite.SetupTest()
		redeemer := newStoredProfile(suite.T(), "user-1")
		require.NoError(suite.T(), redeemer.MarkRedeemed("SOMECODE"))
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(redeemer, nil)

		_, err := suite.service.RedeemReferral(suite.ctx, "user-1", "OTHERONE")

		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeReferralRedeemed))
	})

	suite.Run("OwnCode_ShouldBeRejected", func() {
		suite.SetupTest()
		redeemer := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(redeemer, nil)

		_, err := suite.service.RedeemReferral(suite.ctx, "user-1", redeemer.ReferralCode())

		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeReferralOwnCode))
	})

	suite.Run("UnknownCode_ShouldBeRejected", func() {
		suite.SetupTest()
		redeemer := newStoredProfile(suite.T(), "user-1")
		suite.profileRepo.On("FindByUserID", mock.Anything, "user-1").Return(redeemer, nil)
		suite.profileRepo.On("FindByReferralCode", mock.Anything, "NOPENOPE").Return(nil, outbound.ErrNotFound)

		_, err := suite.service.RedeemReferral(suite.ctx, "user-1", "nopenope")

		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeReferralNotFound))
	})
}

// TestProfileServiceTestSuite runs the test suite
func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
