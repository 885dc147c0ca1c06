// Package eateries implements the healthy-eatery locator use case.
package eateries

import (
	"context"
	"math"
	"sort"

	"github.com/dishcovery/v1/internal/domain/eatery"
	"github.com/dishcovery/v1/internal/ports/inbound"
	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/errors"
	"go.uber.org/zap"
)

// EateryService implements the inbound.EateryService port
type EateryService struct {
	eateryRepo outbound.EateryRepository
	logger     *zap.Logger
}

// NewEateryService creates a new eatery service
func NewEateryService(eateryRepo outbound.EateryRepository, logger *zap.Logger) inbound.EateryService {
	return &EateryService{
		eateryRepo: eateryRepo,
		logger:     logger.Named("eatery-service"),
	}
}

// Nearby filters the directory to entries with a complete address within
// the radius and sorts them by great-circle distance. Entries with
// malformed coordinates get an infinite distance, so any finite radius
// excludes them.
func (s *EateryService) Nearby(ctx context.Context, query inbound.NearbyQuery) ([]inbound.EateryDTO, error) {
	if query.Latitude < -90 || query.Latitude > 90 || query.Longitude < -180 || query.Longitude > 180 {
		return nil, errors.NewValidationError("origin coordinates out of range")
	}
	if query.MaxDistanceKm <= 0 || math.IsNaN(query.MaxDistanceKm) {
		return nil, errors.NewValidationError("max distance must be positive")
	}

	all, err := s.eateryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list eateries", err)
	}

	results := make([]inbound.EateryDTO, 0, len(all))
	for _, e := range all {
		if !e.Address().Complete() {
			continue
		}
		distance := e.DistanceFromKm(query.Latitude, query.Longitude)
		if distance > query.MaxDistanceKm {
			continue
		}
		results = append(results, toEateryDTO(e, distance))
	}

	descending := query.Sort == inbound.SortDescending
	sort.SliceStable(results, func(i, j int) bool {
		if descending {
			return results[i].DistanceKm > results[j].DistanceKm
		}
		return results[i].DistanceKm < results[j].DistanceKm
	})

	s.logger.Debug("Nearby eateries computed",
		zap.Int("candidates", len(all)), zap.Int("matches", len(results)))

	return results, nil
}

func toEateryDTO(e *eatery.HealthyEatery, distanceKm float64) inbound.EateryDTO {
	addr := e.Address()
	return inbound.EateryDTO{
		ID:               e.ID(),
		Name:             e.Name(),
		BlockHouseNumber: addr.BlockHouseNumber,
		BuildingName:     addr.BuildingName,
		PostalCode:       addr.PostalCode,
		StreetName:       addr.StreetName,
		Type:             addr.Type,
		FloorNumber:      addr.FloorNumber,
		UnitNumber:       addr.UnitNumber,
		Description:      e.Description(),
		Coordinates:      e.Coordinates(),
		DistanceKm:       distanceKm,
	}
}
