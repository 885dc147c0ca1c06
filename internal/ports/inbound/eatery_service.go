package inbound

import (
	"context"

	"github.com/google/uuid"
)

// SortDirection orders distance results
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// EateryService defines the healthy-eatery locator use cases
type EateryService interface {
	// Nearby returns eateries within the radius, sorted by distance
	Nearby(ctx context.Context, query NearbyQuery) ([]EateryDTO, error)
}

// NearbyQuery describes the caller's position and search preferences
type NearbyQuery struct {
	Latitude      float64       `validate:"gte=-90,lte=90"`
	Longitude     float64       `validate:"gte=-180,lte=180"`
	MaxDistanceKm float64       `validate:"gt=0"`
	Sort          SortDirection `validate:"omitempty,oneof=asc desc"`
}

// EateryDTO is the API-facing view of a directory entry with its distance
type EateryDTO struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	BlockHouseNumber string    `json:"block_house_number"`
	BuildingName     string    `json:"building_name"`
	PostalCode       string    `json:"postal_code"`
	StreetName       string    `json:"street_name"`
	Type             string    `json:"type"`
	FloorNumber      string    `json:"floor_number"`
	UnitNumber       string    `json:"unit_number"`
	Description      string    `json:"description"`
	Coordinates      string    `json:"coordinates"`
	DistanceKm       float64   `json:"distance_km"`
}
