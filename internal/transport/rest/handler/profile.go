package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"finadvisor/internal/model"
	"finadvisor/internal/service"
	"finadvisor/internal/transport/rest/middleware"
)

// ProfileHandler handles user profile endpoints
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileSvc.Get(r.Context(), userID)
	if errors.Is(err, service.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "profile not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Put handles PUT /v1/profile
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.profileSvc.Upsert(r.Context(), userID, &profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
