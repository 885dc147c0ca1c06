package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ProfileTestSuite provides a test suite for the Profile entity
type ProfileTestSuite struct {
	suite.Suite
}

// TestProfileCreation tests lazy profile creation
func (suite *ProfileTestSuite) TestProfileCreation() {
	suite.Run("ValidUserID_ShouldCreateWithReferralCode", func() {
		p, err := NewProfile("user-123")

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), p)

		assert.Equal(suite.T(), "user-123", p.UserID())
		assert.Len(suite.T(), p.ReferralCode(), ReferralCodeLength)
		assert.Regexp(suite.T(), "^[A-Z0-9]{8}$", p.ReferralCode())
		assert.Zero(suite.T(), p.Points())
		assert.False(suite.T(), p.Redeemed())

		events := p.Events()
		require.Len(suite.T(), events, 1)
		_, ok := events[0].(ProfileCreatedEvent)
		assert.True(suite.T(), ok, "Should emit ProfileCreatedEvent")
	})

	suite.Run("EmptyUserID_ShouldReturnError", func() {
		p, err := NewProfile("  ")

		assert.Nil(suite.T(), p)
		assert.Equal(suite.T(), ErrEmptyUserID, err)
	})
}

// TestBMIDerivation tests BMI recomputation on measurement changes
func (suite *ProfileTestSuite) TestBMIDerivation() {
	suite.Run("WeightAndHeightSet_ShouldComputeBMI", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.SetWeight(70))
		assert.Zero(suite.T(), p.BMI(), "BMI stays zero until height is known")

		require.NoError(suite.T(), p.SetHeight(175))
		assert.InDelta(suite.T(), 22.857, p.BMI(), 0.001)
	})

	suite.Run("WeightChange_ShouldRecomputeBMI", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), p.SetHeight(160))
		require.NoError(suite.T(), p.SetWeight(64))

		assert.InDelta(suite.T(), 25.0, p.BMI(), 0.001)

		require.NoError(suite.T(), p.SetWeight(56.32))
		assert.InDelta(suite.T(), 22.0, p.BMI(), 0.001)
	})

	suite.Run("ImplausibleMeasurements_ShouldBeRejected", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), ErrImplausibleWeight, p.SetWeight(0))
		assert.Equal(suite.T(), ErrImplausibleWeight, p.SetWeight(900))
		assert.Equal(suite.T(), ErrImplausibleHeight, p.SetHeight(-170))
		assert.Equal(suite.T(), ErrImplausibleAge, p.SetAge(200))
	})
}

// TestConditionsAndGoal tests tag and goal validation
func (suite *ProfileTestSuite) TestConditionsAndGoal() {
	suite.Run("KnownTags_ShouldBeNormalizedAndStored", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.SetChronicConditions([]string{" DM ", "htn", ""}))

		assert.Equal(suite.T(), []string{"dm", "htn"}, p.ChronicConditions())
		assert.True(suite.T(), p.HasCondition(ConditionDiabetes))
		assert.False(suite.T(), p.HasCondition(ConditionDyslipidemia))
	})

	suite.Run("UnknownTag_ShouldBeRejected", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), ErrUnknownCondition, p.SetChronicConditions([]string{"asthma"}))
	})

	suite.Run("HealthGoal_ShouldValidateEnum", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.SetHealthGoal(GoalLoseWeight))
		assert.Equal(suite.T(), GoalLoseWeight, p.HealthGoal())
		assert.Equal(suite.T(), ErrInvalidHealthGoal, p.SetHealthGoal("bulk"))
	})
}

// TestReferralProgram tests points and redeem-once semantics
func (suite *ProfileTestSuite) TestReferralProgram() {
	suite.Run("AwardPoints_ShouldAccumulate", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)

		p.AwardPoints(50)
		p.AwardPoints(25)

		assert.Equal(suite.T(), 75, p.Points())
	})

	suite.Run("MarkRedeemed_ShouldBeOneShot", func() {
		p, err := NewProfile("user-123")
		require.NoError(suite.T(), err)
		p.Events()

		require.NoError(suite.T(), p.MarkRedeemed("ABCD1234"))
		assert.True(suite.T(), p.Redeemed())

		events := p.Events()
		require.Len(suite.T(), events, 1)
		redeemed, ok := events[0].(ReferralRedeemedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "ABCD1234", redeemed.Code)

		assert.Equal(suite.T(), ErrAlreadyRedeemed, p.MarkRedeemed("ZZZZ9999"))
	})
}

// TestProfileTestSuite runs the test suite
func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}
