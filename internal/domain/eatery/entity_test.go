package eatery

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// EateryTestSuite provides a test suite for eatery geo math
type EateryTestSuite struct {
	suite.Suite
}

func (suite *EateryTestSuite) TestParseCoordinates() {
	suite.Run("ValidPair_ShouldParseLonFirst", func() {
		lon, lat, err := ParseCoordinates("103.8198, 1.3521")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 103.8198, lon)
		assert.Equal(suite.T(), 1.3521, lat)
	})

	suite.Run("Malformed_ShouldReturnError", func() {
		for _, input := range []string{"", "103.8198", "a,b", "1,2,3"} {
			_, _, err := ParseCoordinates(input)
			assert.Equal(suite.T(), ErrMalformedCoordinates, err, "input %q", input)
		}
	})
}

func (suite *EateryTestSuite) TestHaversine() {
	suite.Run("SamePoint_ShouldBeZero", func() {
		assert.Zero(suite.T(), Haversine(1.3521, 103.8198, 1.3521, 103.8198))
	})

	suite.Run("KnownDistance_ShouldMatchWithinTolerance", func() {
		// Singapore city center to Changi Airport, roughly 19 km.
		d := Haversine(1.3521, 103.8198, 1.3644, 103.9915)
		assert.InDelta(suite.T(), 19.1, d, 1.0)
	})

	suite.Run("Symmetry_ShouldHold", func() {
		a := Haversine(1.29, 103.85, 1.44, 103.79)
		b := Haversine(1.44, 103.79, 1.29, 103.85)
		assert.InDelta(suite.T(), a, b, 1e-9)
	})
}

func (suite *EateryTestSuite) TestDistanceFromKm() {
	suite.Run("MalformedCoordinates_ShouldYieldInfinity", func() {
		e := Reconstruct(uuid.New(), "Broken", Address{StreetName: "Main St", PostalCode: "123456"},
			"", "not-coordinates", time.Now())

		assert.True(suite.T(), math.IsInf(e.DistanceFromKm(1.35, 103.82), 1))
	})

	suite.Run("ValidCoordinates_ShouldComputeDistance", func() {
		e := Reconstruct(uuid.New(), "Near", Address{StreetName: "Main St", PostalCode: "123456"},
			"", "103.8198,1.3521", time.Now())

		assert.InDelta(suite.T(), 0, e.DistanceFromKm(1.3521, 103.8198), 1e-9)
	})
}

func (suite *EateryTestSuite) TestAddressComplete() {
	assert.True(suite.T(), Address{StreetName: "Main St", PostalCode: "123456"}.Complete())
	assert.False(suite.T(), Address{StreetName: "Main St"}.Complete())
	assert.False(suite.T(), Address{PostalCode: "123456"}.Complete())
	assert.False(suite.T(), Address{StreetName: "  "}.Complete())
}

func TestEateryTestSuite(t *testing.T) {
	suite.Run(t, new(EateryTestSuite))
}
