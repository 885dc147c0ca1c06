package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/dishcovery/v1/internal/ports/inbound"
	apperrors "github.com/dishcovery/v1/pkg/errors"
)

// defaultMaxDistanceKm bounds the search radius when none is given
const defaultMaxDistanceKm = 5.0

// EateryHandlers handles healthy-eatery locator requests
type EateryHandlers struct {
	eateryService inbound.EateryService
	logger        *zap.Logger
}

// NewEateryHandlers creates a new eatery handlers instance
func NewEateryHandlers(eateryService inbound.EateryService, logger *zap.Logger) *EateryHandlers {
	return &EateryHandlers{
		eateryService: eateryService,
		logger:        logger,
	}
}

// Nearby handles GET /api/v1/eateries/nearby
func (h *EateryHandlers) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		writeError(h.logger, w, r, apperrors.NewBadRequestError("lat query parameter must be a number"))
		return
	}

	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		writeError(h.logger, w, r, apperrors.NewBadRequestError("lon query parameter must be a number"))
		return
	}

	radiusKm := defaultMaxDistanceKm
	if raw := q.Get("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(h.logger, w, r, apperrors.NewBadRequestError("radius_km query parameter must be a number"))
			return
		}
	}

	sort := inbound.SortAscending
	if q.Get("sort") == string(inbound.SortDescending) {
		sort = inbound.SortDescending
	}

	eateries, err := h.eateryService.Nearby(r.Context(), inbound.NearbyQuery{
		Latitude:      lat,
		Longitude:     lon,
		MaxDistanceKm: radiusKm,
		Sort:          sort,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, eateries)
}
