package eateries

import (
	"context"
	"testing"
	"time"

	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/ports/inbound"
	apperrors "github.com/dishcovery/v1/pkg/errors"
	"github.com/dishcovery/v1/pkg/logger"
	"github.com/dishcovery/v1/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// EateryServiceTestSuite provides a test suite for the locator
type EateryServiceTestSuite struct {
	suite.Suite
	eateryRepo *testutils.MockEateryRepository
	service    inbound.EateryService
	ctx        context.Context
}

func (suite *EateryServiceTestSuite) SetupTest() {
	suite.eateryRepo = new(testutils.MockEateryRepository)
	suite.service = NewEateryService(suite.eateryRepo, logger.NewNop())
	suite.ctx = context.Background()
}

func directoryEntry(name, coordinates string, addr eatery.Address) *eatery.HealthyEatery {
	return eatery.Reconstruct(uuid.New(), name, addr, "", coordinates, time.Now())
}

func completeAddress() eatery.Address {
	return eatery.Address{StreetName: "Orchard Rd", PostalCode: "238823"}
}

// Origin at Singapore city center; fixtures sit at known offsets.
var origin = inbound.NearbyQuery{Latitude: 1.3521, Longitude: 103.8198, MaxDistanceKm: 10}

func (suite *EateryServiceTestSuite) TestNearby() {
	suite.Run("RadiusFilter_ShouldKeepOnlyEateriesWithinMax", func() {
		suite.SetupTest()
		suite.eateryRepo.On("FindAll", mock.Anything).Return([]*eatery.HealthyEatery{
			directoryEntry("AtOrigin", "103.8198,1.3521", completeAddress()),
			directoryEntry("FiveKmNorth", "103.8198,1.3971", completeAddress()),
			directoryEntry("FarAway", "104.5,2.5", completeAddress()),
		}, nil)

		results, err := suite.service.Nearby(suite.ctx, origin)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), results, 2)
		for _, r := range results {
			assert.LessOrEqual(suite.T(), r.DistanceKm, origin.MaxDistanceKm)
		}
	})

	suite.Run("Ascending_ShouldSortNearestFirst", func() {
		suite.SetupTest()
		suite.eateryRepo.On("FindAll", mock.Anything).Return([]*eatery.HealthyEatery{
			directoryEntry("FiveKmNorth", "103.8198,1.3971", completeAddress()),
			directoryEntry("AtOrigin", "103.8198,1.3521", completeAddress()),
		}, nil)

		results, err := suite.service.Nearby(suite.ctx, origin)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), results, 2)
		assert.Equal(suite.T(), "AtOrigin", results[0].Name)
		assert.True(suite.T(), results[0].DistanceKm <= results[1].DistanceKm)
	})

	suite.Run("Descending_ShouldSortFarthestFirst", func() {
		suite.SetupTest()
		suite.eateryRepo.On("FindAll", mock.Anything).Return([]*eatery.HealthyEatery{
			directoryEntry("AtOrigin", "103.8198,1.3521", completeAddress()),
			directoryEntry("FiveKmNorth", "103.8198,1.3971", completeAddress()),
		}, nil)

		query := origin
		query.Sort = inbound.SortDescending
		results, err := suite.service.Nearby(suite.ctx, query)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), results, 2)
		assert.Equal(suite.T(), "FiveKmNorth", results[0].Name)
	})

	suite.Run("MalformedCoordinates_ShouldBeExcludedByFiniteRadius", func() {
		suite.SetupTest()
		suite.eateryRepo.On("FindAll", mock.Anything).Return([]*eatery.HealthyEatery{
			directoryEntry("Broken", "garbage", completeAddress()),
			directoryEntry("AtOrigin", "103.8198,1.3521", completeAddress()),
		}, nil)

		results, err := suite.service.Nearby(suite.ctx, origin)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), results, 1)
		assert.Equal(suite.T(), "AtOrigin", results[0].Name)
	})

	suite.Run("IncompleteAddress_ShouldBeExcludedBeforeDistance", func() {
		suite.SetupTest()
		suite.eateryRepo.On("FindAll", mock.Anything).Return([]*eatery.HealthyEatery{
			directoryEntry("NoPostal", "103.8198,1.3521", eatery.Address{StreetName: "Orchard Rd"}),
			directoryEntry("AtOrigin", "103.8198,1.3521", completeAddress()),
		}, nil)

		results, err := suite.service.Nearby(suite.ctx, origin)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), results, 1)
		assert.Equal(suite.T(), "AtOrigin", results[0].Name)
	})

	suite.Run("InvalidQuery_ShouldReturnValidationError", func() {
		suite.SetupTest()

		_, err := suite.service.Nearby(suite.ctx, inbound.NearbyQuery{Latitude: 91, Longitude: 0, MaxDistanceKm: 5})
		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeValidationFailed))

		_, err = suite.service.Nearby(suite.ctx, inbound.NearbyQuery{Latitude: 0, Longitude: 0, MaxDistanceKm: 0})
		assert.True(suite.T(), apperrors.Is(err, apperrors.CodeValidationFailed))
	})
}

func TestEateryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EateryServiceTestSuite))
}
