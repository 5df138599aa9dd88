package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/bybysker/goal-tracker/internal/models"
	"github.com/bybysker/goal-tracker/internal/services/profile"
	"github.com/bybysker/goal-tracker/internal/validation"
)

// ProfileHandler handles psychological profile requests
type ProfileHandler struct {
	profiles *profile.Service
	logger   *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *profile.Service, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// DefineProfileRequest is the payload for POST /profile_definition
type DefineProfileRequest struct {
	UserID      string            `json:"user_id" validate:"required"`
	ProfileData models.RawProfile `json:"profile_data"`
}

// DefineProfile refines the raw questionnaire answers into a profile
// document and persists it under the user.
func (h *ProfileHandler) DefineProfile(w http.ResponseWriter, r *http.Request) {
	var req DefineProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", "Invalid JSON payload")
		return
	}
	if err := validation.Validate.Struct(&req); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	refined, err := h.profiles.Refine(r.Context(), req.ProfileData)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if err := h.profiles.Save(r.Context(), req.UserID, refined); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, refined)
}
