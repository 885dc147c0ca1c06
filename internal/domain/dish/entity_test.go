package dish

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DishTestSuite provides a test suite for the Dish entity
type DishTestSuite struct {
	suite.Suite
}

func floatPtr(v float64) *float64 { return &v }

func timeNowFixture() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

// TestDishCreation tests dish creation scenarios
func (suite *DishTestSuite) TestDishCreation() {
	suite.Run("ValidDish_ShouldCreateWithEmptyRatingAggregate", func() {
		// Arrange
		calories := floatPtr(320)

		// Act
		d, err := NewDish("Chicken Adobo", "1. Marinate chicken...", calories, "gpt-4")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), d)

		assert.NotEqual(suite.T(), uuid.Nil, d.ID())
		assert.Equal(suite.T(), "Chicken Adobo", d.Name())
		assert.Equal(suite.T(), "chicken adobo", d.NameKey())
		assert.Equal(suite.T(), float64(0), d.Rating())
		assert.Equal(suite.T(), 0, d.RatingCount())
		assert.Equal(suite.T(), float64(320), *d.Calories())
		assert.NotZero(suite.T(), d.CreatedAt())

		events := d.Events()
		assert.Len(suite.T(), events, 1)

		createdEvent, ok := events[0].(DishCreatedEvent)
		assert.True(suite.T(), ok, "Should emit DishCreatedEvent")
		assert.Equal(suite.T(), d.ID(), createdEvent.DishID)
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		d, err := NewDish("   ", "some recipe", nil, "gpt-4")

		assert.Nil(suite.T(), d)
		assert.Equal(suite.T(), ErrEmptyName, err)
	})

	suite.Run("EmptyRecipe_ShouldReturnError", func() {
		d, err := NewDish("Pho", "  ", nil, "gpt-4")

		assert.Nil(suite.T(), d)
		assert.Equal(suite.T(), ErrEmptyRecipe, err)
	})

	suite.Run("NilCalories_ShouldBeAllowed", func() {
		d, err := NewDish("Pho", "1. Simmer bones...", nil, "gpt-4")

		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), d.Calories())
	})
}

// TestNormalizeName tests the dedup key derivation
func (suite *DishTestSuite) TestNormalizeName() {
	suite.Run("CaseAndWhitespaceVariants_ShouldCollapse", func() {
		assert.Equal(suite.T(), "chicken adobo", NormalizeName("  Chicken   ADOBO "))
		assert.Equal(suite.T(), "pad thai", NormalizeName("Pad\tThai"))
		assert.Equal(suite.T(), "", NormalizeName("   "))
	})

	suite.Run("VariantNames_ShouldMapToSameKey", func() {
		assert.Equal(suite.T(), NormalizeName("Beef  Rendang"), NormalizeName("beef rendang"))
	})
}

// TestFoldRating tests the running mean aggregate
func (suite *DishTestSuite) TestFoldRating() {
	suite.Run("RepeatedValue_ShouldKeepMeanAtValue", func() {
		d, err := NewDish("Laksa", "recipe text", floatPtr(400), "gpt-4")
		require.NoError(suite.T(), err)

		for i := 0; i < 4; i++ {
			require.NoError(suite.T(), d.FoldRating(3))
		}

		assert.Equal(suite.T(), float64(3), d.Rating())
		assert.Equal(suite.T(), 4, d.RatingCount())
	})

	suite.Run("MixedValues_ShouldComputeRunningMean", func() {
		// Existing aggregate: mean 4 over 2 ratings, then a 5 arrives.
		d := Reconstruct(uuid.New(), "Laksa", "laksa", "recipe text",
			4, 2, floatPtr(400), "gpt-4", timeNowFixture(), timeNowFixture())

		require.NoError(suite.T(), d.FoldRating(5))

		assert.InDelta(suite.T(), 4.3333, d.Rating(), 0.0001)
		assert.Equal(suite.T(), 3, d.RatingCount())
	})

	suite.Run("OutOfRange_ShouldReturnErrorAndLeaveAggregate", func() {
		d, err := NewDish("Laksa", "recipe text", floatPtr(400), "gpt-4")
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), ErrRatingOutOfRange, d.FoldRating(0))
		assert.Equal(suite.T(), ErrRatingOutOfRange, d.FoldRating(5.5))
		assert.Equal(suite.T(), 0, d.RatingCount())
	})

	suite.Run("Fold_ShouldEmitDishRatedEvent", func() {
		d, err := NewDish("Laksa", "recipe text", floatPtr(400), "gpt-4")
		require.NoError(suite.T(), err)
		d.Events() // drain creation event

		require.NoError(suite.T(), d.FoldRating(4))

		events := d.Events()
		require.Len(suite.T(), events, 1)
		rated, ok := events[0].(DishRatedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), float64(4), rated.NewMean)
		assert.Equal(suite.T(), 1, rated.RatingCount)
	})
}

// TestAdoptLowerCalorie tests the lower-calorie replacement rule
func (suite *DishTestSuite) TestAdoptLowerCalorie() {
	suite.Run("StrictlyLower_ShouldReplaceAndKeepRatings", func() {
		d := Reconstruct(uuid.New(), "Omelette", "omelette", "old recipe",
			4.5, 10, floatPtr(300), "gpt-4", timeNowFixture(), timeNowFixture())

		replaced := d.AdoptLowerCalorie("new recipe", 250, "gpt-4")

		assert.True(suite.T(), replaced)
		assert.Equal(suite.T(), "new recipe", d.Recipe())
		assert.Equal(suite.T(), float64(250), *d.Calories())
		assert.Equal(suite.T(), 4.5, d.Rating())
		assert.Equal(suite.T(), 10, d.RatingCount())
	})

	suite.Run("HigherOrEqual_ShouldKeepStored", func() {
		d := Reconstruct(uuid.New(), "Omelette", "omelette", "old recipe",
			4.5, 10, floatPtr(300), "gpt-4", timeNowFixture(), timeNowFixture())

		assert.False(suite.T(), d.AdoptLowerCalorie("new recipe", 400, "gpt-4"))
		assert.False(suite.T(), d.AdoptLowerCalorie("new recipe", 300, "gpt-4"))
		assert.Equal(suite.T(), "old recipe", d.Recipe())
		assert.Equal(suite.T(), float64(300), *d.Calories())
	})

	suite.Run("StoredCaloriesUnknown_ShouldNeverReplace", func() {
		d := Reconstruct(uuid.New(), "Omelette", "omelette", "old recipe",
			0, 0, nil, "gpt-4", timeNowFixture(), timeNowFixture())

		assert.False(suite.T(), d.AdoptLowerCalorie("new recipe", 1, "gpt-4"))
		assert.Equal(suite.T(), "old recipe", d.Recipe())
		assert.Nil(suite.T(), d.Calories())
	})

	suite.Run("Replacement_ShouldEmitDishRecipeReplacedEvent", func() {
		d := Reconstruct(uuid.New(), "Omelette", "omelette", "old recipe",
			4.5, 10, floatPtr(300), "gpt-4", timeNowFixture(), timeNowFixture())

		require.True(suite.T(), d.AdoptLowerCalorie("new recipe", 250, "gpt-4"))

		events := d.Events()
		require.Len(suite.T(), events, 1)
		replaced, ok := events[0].(DishRecipeReplacedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), float64(300), replaced.PreviousCalories)
		assert.Equal(suite.T(), float64(250), replaced.NewCalories)
	})
}

// TestDishTestSuite runs the test suite
func TestDishTestSuite(t *testing.T) {
	suite.Run(t, new(DishTestSuite))
}
