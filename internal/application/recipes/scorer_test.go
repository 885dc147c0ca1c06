package recipes

import (
	"math"
	"testing"
	"time"

	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ScorerTestSuite provides a test suite for the recommendation scorer
type ScorerTestSuite struct {
	suite.Suite
}

func catalogRecipe(title string, n recipe.Nutrition) *recipe.Recipe {
	now := time.Now()
	return recipe.Reconstruct(uuid.New(), title, "asian",
		[]string{"ingredient"}, []string{"step"}, nil, n, now, now)
}

func profileWith(goal profile.HealthGoal, conditions ...string) *profile.Profile {
	p, err := profile.NewProfile("scorer-user")
	if err != nil {
		panic(err)
	}
	if err := p.SetHealthGoal(goal); err != nil {
		panic(err)
	}
	if len(conditions) > 0 {
		if err := p.SetChronicConditions(conditions); err != nil {
			panic(err)
		}
	}
	return p
}

func (suite *ScorerTestSuite) TestHealthScore() {
	suite.Run("LoseWeightDiabetic_ShouldSumEnergyAndCarbs", func() {
		p := profileWith(profile.GoalLoseWeight, profile.ConditionDiabetes)
		n := recipe.Nutrition{Energy: "500 kcal", Carbohydrate: "40 g"}

		assert.Equal(suite.T(), float64(540), healthScore(n, p))
	})

	suite.Run("GainWeight_ShouldSubtractProtein", func() {
		p := profileWith(profile.GoalGainWeight)
		n := recipe.Nutrition{Protein: "30 g"}

		assert.Equal(suite.T(), float64(-30), healthScore(n, p))
	})

	suite.Run("HypertensionAndDyslipidemia_ShouldAddSodiumAndCholesterol", func() {
		p := profileWith(profile.GoalMaintain, profile.ConditionHypertension, profile.ConditionDyslipidemia)
		n := recipe.Nutrition{Sodium: "800 mg", Cholesterol: "120 mg"}

		assert.Equal(suite.T(), float64(920), healthScore(n, p))
	})

	suite.Run("NonNumericField_ShouldPoisonScoreWithNaN", func() {
		p := profileWith(profile.GoalLoseWeight)
		n := recipe.Nutrition{Energy: "varies"}

		assert.True(suite.T(), math.IsNaN(healthScore(n, p)))
	})
}

func (suite *ScorerTestSuite) TestPickHealthiest() {
	suite.Run("LoseWeightDiabetic_ShouldPickLowerCombinedScore", func() {
		p := profileWith(profile.GoalLoseWeight, profile.ConditionDiabetes)
		first := catalogRecipe("First", recipe.Nutrition{Energy: "500", Carbohydrate: "40"})
		second := catalogRecipe("Second", recipe.Nutrition{Energy: "300", Carbohydrate: "60"})

		chosen := pickHealthiest([]*recipe.Recipe{first, second}, p)

		require.NotNil(suite.T(), chosen)
		assert.Equal(suite.T(), "Second", chosen.Title())
	})

	suite.Run("NaNScore_ShouldNeverBeChosen", func() {
		p := profileWith(profile.GoalLoseWeight)
		finite := catalogRecipe("Finite", recipe.Nutrition{Energy: "900"})
		poisoned := catalogRecipe("Poisoned", recipe.Nutrition{Energy: "unknown"})

		chosen := pickHealthiest([]*recipe.Recipe{poisoned, finite}, p)

		require.NotNil(suite.T(), chosen)
		assert.Equal(suite.T(), "Finite", chosen.Title())
	})

	suite.Run("AllScoresNaN_ShouldReturnNil", func() {
		p := profileWith(profile.GoalLoseWeight)
		poisoned := catalogRecipe("Poisoned", recipe.Nutrition{Energy: "unknown"})

		assert.Nil(suite.T(), pickHealthiest([]*recipe.Recipe{poisoned}, p))
	})

	suite.Run("EmptyList_ShouldReturnNil", func() {
		assert.Nil(suite.T(), pickHealthiest(nil, profileWith(profile.GoalMaintain)))
	})

	suite.Run("NoScoringSignal_ShouldPickFirstByStableTie", func() {
		p := profileWith(profile.GoalMaintain)
		a := catalogRecipe("A", recipe.Nutrition{})
		b := catalogRecipe("B", recipe.Nutrition{})

		chosen := pickHealthiest([]*recipe.Recipe{a, b}, p)

		require.NotNil(suite.T(), chosen)
		assert.Equal(suite.T(), "A", chosen.Title())
	})
}

func TestScorerTestSuite(t *testing.T) {
	suite.Run(t, new(ScorerTestSuite))
}
