package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"finadvisor/internal/engine"
	"finadvisor/internal/model"
	"finadvisor/internal/service"
	"finadvisor/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// AdvisorHandler handles the advisor catalog and decision tree endpoints
type AdvisorHandler struct {
	resolverSvc *service.ResolverService
	progressSvc *service.ProgressService
	profileSvc  *service.ProfileService
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(resolverSvc *service.ResolverService, progressSvc *service.ProgressService, profileSvc *service.ProfileService) *AdvisorHandler {
	return &AdvisorHandler{
		resolverSvc: resolverSvc,
		progressSvc: progressSvc,
		profileSvc:  profileSvc,
	}
}

type advisorEntry struct {
	engine.Advisor
	GoalLabel string `json:"goalLabel"`
}

// List handles GET /v1/advisors
func (h *AdvisorHandler) List(w http.ResponseWriter, r *http.Request) {
	advisors := engine.Advisors()
	entries := make([]advisorEntry, len(advisors))
	for i, a := range advisors {
		entries[i] = advisorEntry{Advisor: a, GoalLabel: model.GoalLabel(a.Goal)}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"advisors": entries,
	})
}

type resolveRequest struct {
	Step *int `json:"step"`
}

// Resolve handles POST /v1/advisors/{advisorId}/resolve
func (h *AdvisorHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]
	userID := middleware.GetUserID(r.Context())

	var req resolveRequest
	if r.Body != nil {
		// absent or empty body means "resolve the next unanswered step"
		json.NewDecoder(r.Body).Decode(&req)
	}

	path := h.storedPath(r, advisorID)
	step := len(path)
	if req.Step != nil {
		step = *req.Step
	}

	options, completed := h.resolverSvc.ResolveStep(r.Context(), advisorID, userID, step, path, h.stepContext(r))

	resp := map[string]interface{}{
		"advisorId": advisorID,
		"step":      engine.EffectiveStep(step, path),
		"options":   options,
		"completed": completed,
	}
	if !completed {
		resp["question"] = engine.Question(engine.GoalFor(advisorID), engine.EffectiveStep(step, path))
	}
	writeJSON(w, http.StatusOK, resp)
}

// RecordDecision handles POST /v1/advisors/{advisorId}/decisions
func (h *AdvisorHandler) RecordDecision(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]

	var decision model.Decision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := middleware.GetUserID(r.Context())
	path := h.storedPath(r, advisorID)
	next, err := h.resolverSvc.RecordDecision(r.Context(), advisorID, userID, path, decision)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSelection):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPathComplete):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	goal := engine.GoalFor(advisorID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"advisorId": advisorID,
		"path":      next,
		"complete":  engine.IsComplete(goal, next),
	})
}

// Progress handles GET /v1/advisors/{advisorId}/progress
func (h *AdvisorHandler) Progress(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]

	record := h.progressSvc.Load(r.Context(), advisorID, middleware.GetUserID(r.Context()))
	if record == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"advisorId": advisorID,
			"path":      model.DecisionPath{},
		})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Reset handles POST /v1/advisors/{advisorId}/reset
func (h *AdvisorHandler) Reset(w http.ResponseWriter, r *http.Request) {
	advisorID := mux.Vars(r)["advisorId"]
	h.resolverSvc.Reset(r.Context(), advisorID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// storedPath loads the persisted path for the advisor session; a missing,
// unreadable or foreign-user record means a fresh session
func (h *AdvisorHandler) storedPath(r *http.Request, advisorID string) model.DecisionPath {
	record := h.progressSvc.Load(r.Context(), advisorID, middleware.GetUserID(r.Context()))
	if record == nil {
		return nil
	}
	return record.Path
}

// stepContext derives per-request resolution context from the user's
// profile; a missing profile just yields an empty context
func (h *AdvisorHandler) stepContext(r *http.Request) model.StepContext {
	userID := middleware.GetUserID(r.Context())
	profile, err := h.profileSvc.Get(r.Context(), userID)
	if err != nil || profile == nil {
		return model.StepContext{}
	}
	return model.StepContext{IncomeBracket: profile.IncomeBracket()}
}
