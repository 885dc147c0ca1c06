// Package eatery contains the healthy-eatery directory entries and the
// geo math used to rank them by distance from the caller.
package eatery

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Address holds the structured address fields of an eatery.
type Address struct {
	BlockHouseNumber string `json:"block_house_number"`
	BuildingName     string `json:"building_name"`
	PostalCode       string `json:"postal_code"`
	StreetName       string `json:"street_name"`
	Type             string `json:"type"`
	FloorNumber      string `json:"floor_number"`
	UnitNumber       string `json:"unit_number"`
}

// Complete reports whether the address carries the fields required before
// a record may appear in distance results.
func (a Address) Complete() bool {
	return strings.TrimSpace(a.StreetName) != "" && strings.TrimSpace(a.PostalCode) != ""
}

// HealthyEatery represents one read-only directory entry. Coordinates are
// stored as the raw source string, longitude first ("lon,lat").
type HealthyEatery struct {
	id          uuid.UUID
	name        string
	address     Address
	description string
	coordinates string
	createdAt   time.Time
}

// Reconstruct rebuilds an eatery from persistence.
func Reconstruct(id uuid.UUID, name string, address Address, description, coordinates string, createdAt time.Time) *HealthyEatery {
	return &HealthyEatery{
		id:          id,
		name:        name,
		address:     address,
		description: description,
		coordinates: coordinates,
		createdAt:   createdAt,
	}
}

// ID returns the eatery identifier
func (e *HealthyEatery) ID() uuid.UUID { return e.id }

// Name returns the eatery name
func (e *HealthyEatery) Name() string { return e.name }

// Address returns the structured address
func (e *HealthyEatery) Address() Address { return e.address }

// Description returns the free-text description
func (e *HealthyEatery) Description() string { return e.description }

// Coordinates returns the raw "lon,lat" coordinate string
func (e *HealthyEatery) Coordinates() string { return e.coordinates }

// CreatedAt returns the creation timestamp
func (e *HealthyEatery) CreatedAt() time.Time { return e.createdAt }

// ParseCoordinates splits a "lon,lat" string into its numeric parts.
// The source data is longitude-first; callers must not swap the order.
func ParseCoordinates(s string) (lon, lat float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedCoordinates
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, ErrMalformedCoordinates
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, ErrMalformedCoordinates
	}
	return lon, lat, nil
}

const earthRadiusKm = 6371

// Haversine computes the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceFromKm returns the great-circle distance from the given origin
// to this eatery. Malformed coordinates yield +Inf so the record sorts
// last and falls outside any finite radius filter.
func (e *HealthyEatery) DistanceFromKm(lat, lon float64) float64 {
	elon, elat, err := ParseCoordinates(e.coordinates)
	if err != nil {
		return math.Inf(1)
	}
	return Haversine(lat, lon, elat, elon)
}
