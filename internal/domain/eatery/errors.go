package eatery

import "errors"

// Domain errors for eatery operations

var (
	ErrMalformedCoordinates = errors.New("coordinates must be a \"lon,lat\" pair")
)
