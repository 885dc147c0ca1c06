package recipes

import (
	"math"

	"github.com/dishcovery/v1/internal/domain/profile"
	"github.com/dishcovery/v1/internal/domain/recipe"
)

// healthScore computes the penalty of a recipe for a given profile. Lower
// is better. Each chronic condition adds the nutrient it is sensitive to;
// the weight goal adds energy (losing) or subtracts protein (gaining).
// Any non-numeric nutrition field poisons the sum with NaN, which keeps
// the recipe from ever being selected.
func healthScore(n recipe.Nutrition, p *profile.Profile) float64 {
	var score float64

	switch p.HealthGoal() {
	case profile.GoalGainWeight:
		score -= n.ProteinValue()
	case profile.GoalLoseWeight:
		score += n.EnergyValue()
	}

	if p.HasCondition(profile.ConditionHypertension) {
		score += n.SodiumValue()
	}
	if p.HasCondition(profile.ConditionDyslipidemia) {
		score += n.CholesterolValue()
	}
	if p.HasCondition(profile.ConditionDiabetes) {
		score += n.CarbohydrateValue()
	}

	return score
}

// pickHealthiest returns the recipe minimizing the health score, or nil
// for an empty list. The comparison is strict, so NaN scores and later
// ties lose to the best finite score seen first.
func pickHealthiest(recipes []*recipe.Recipe, p *profile.Profile) *recipe.Recipe {
	best := math.Inf(1)
	var chosen *recipe.Recipe

	for _, r := range recipes {
		if s := healthScore(r.Nutrition(), p); s < best {
			best = s
			chosen = r
		}
	}

	return chosen
}
