package recipe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// NutritionTestSuite provides a test suite for nutrition amount parsing
type NutritionTestSuite struct {
	suite.Suite
}

func (suite *NutritionTestSuite) TestAmount() {
	suite.Run("LeadingInteger_ShouldParse", func() {
		assert.Equal(suite.T(), float64(250), Amount("250 kcal"))
	})

	suite.Run("LeadingDecimal_ShouldParse", func() {
		assert.Equal(suite.T(), 12.5, Amount("12.5 g"))
	})

	suite.Run("NegativeValue_ShouldParse", func() {
		assert.Equal(suite.T(), float64(-3), Amount("-3"))
	})

	suite.Run("NonNumericPrefix_ShouldYieldNaN", func() {
		assert.True(suite.T(), math.IsNaN(Amount("trace")))
		assert.True(suite.T(), math.IsNaN(Amount("about 200")))
		assert.True(suite.T(), math.IsNaN(Amount("")))
	})
}

func (suite *NutritionTestSuite) TestFieldAccessors() {
	n := Nutrition{
		Energy:       "500 kcal",
		Carbohydrate: "40g",
		Protein:      "22 g",
		Cholesterol:  "n/a",
		Sodium:       "890 mg",
	}

	assert.Equal(suite.T(), float64(500), n.EnergyValue())
	assert.Equal(suite.T(), float64(40), n.CarbohydrateValue())
	assert.Equal(suite.T(), float64(22), n.ProteinValue())
	assert.True(suite.T(), math.IsNaN(n.CholesterolValue()))
	assert.Equal(suite.T(), float64(890), n.SodiumValue())
}

func TestNutritionTestSuite(t *testing.T) {
	suite.Run(t, new(NutritionTestSuite))
}
