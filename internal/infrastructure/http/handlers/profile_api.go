package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dishcovery/v1/internal/ports/inbound"
)

// ProfileHandlers handles health profile and referral requests
type ProfileHandlers struct {
	profileService inbound.ProfileService
	logger         *zap.Logger
}

// NewProfileHandlers creates a new profile handlers instance
func NewProfileHandlers(profileService inbound.ProfileService, logger *zap.Logger) *ProfileHandlers {
	return &ProfileHandlers{
		profileService: profileService,
		logger:         logger,
	}
}

type updateProfileRequest struct {
	Name              *string   `json:"name"`
	Age               *int      `json:"age" validate:"omitempty,gte=0,lte=130"`
	WeightKg          *float64  `json:"weight_kg" validate:"omitempty,gt=0"`
	HeightCm          *float64  `json:"height_cm" validate:"omitempty,gt=0"`
	ChronicConditions *[]string `json:"chronic_conditions"`
	HealthGoal        *string   `json:"health_goal"`
	TargetWeightKg    *float64  `json:"target_weight_kg" validate:"omitempty,gt=0"`
}

type redeemReferralRequest struct {
	Code string `json:"code" validate:"required"`
}

// GetProfile handles GET /api/v1/profile
func (h *ProfileHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.profileService.GetOrCreate(r.Context(), userID)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *ProfileHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	var req updateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.profileService.Update(r.Context(), inbound.UpdateProfileCommand{
		UserID:            userID,
		Name:              req.Name,
		Age:               req.Age,
		WeightKg:          req.WeightKg,
		HeightCm:          req.HeightCm,
		ChronicConditions: req.ChronicConditions,
		HealthGoal:        req.HealthGoal,
		TargetWeightKg:    req.TargetWeightKg,
	})
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}

// RedeemReferral handles POST /api/v1/profile/referral
func (h *ProfileHandlers) RedeemReferral(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUserID(r)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	var req redeemReferralRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	dto, err := h.profileService.RedeemReferral(r.Context(), userID, req.Code)
	if err != nil {
		writeError(h.logger, w, r, err)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, dto)
}
